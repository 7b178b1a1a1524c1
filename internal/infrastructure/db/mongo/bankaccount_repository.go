package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

const bankAccountCollection = "bank_accounts"

type BankAccountRepository struct {
	coll *mongo.Collection
}

func NewBankAccountRepository(db *mongo.Database) *BankAccountRepository {
	return &BankAccountRepository{coll: db.Collection(bankAccountCollection)}
}

type mongoBankAccount struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	OrganizationID string             `bson:"organization_id"`
	MemberID       string             `bson:"member_id"`
	BankName       string             `bson:"bank_name"`
	AccessToken    string             `bson:"access_token,omitempty"`
	RefreshToken   string             `bson:"refresh_token,omitempty"`
	TokenExpireAt  int64              `bson:"token_expire_at,omitempty"`
	IsConnected    bool               `bson:"is_connected"`
	LastSyncAt     int64              `bson:"last_sync_at,omitempty"`
}

func (m mongoBankAccount) toDomain() *domain.BankAccount {
	return &domain.BankAccount{
		ID:             m.ID.Hex(),
		OrganizationID: m.OrganizationID,
		MemberID:       m.MemberID,
		BankName:       m.BankName,
		AccessToken:    m.AccessToken,
		RefreshToken:   m.RefreshToken,
		TokenExpireAt:  unixToTime(m.TokenExpireAt),
		IsConnected:    m.IsConnected,
		LastSyncAt:     unixToTime(m.LastSyncAt),
	}
}

func (r *BankAccountRepository) Create(ctx context.Context, acc *domain.BankAccount) (*domain.BankAccount, error) {
	doc := mongoBankAccount{
		OrganizationID: acc.OrganizationID,
		MemberID:       acc.MemberID,
		BankName:       acc.BankName,
		AccessToken:    acc.AccessToken,
		RefreshToken:   acc.RefreshToken,
		IsConnected:    acc.IsConnected,
	}
	if !acc.TokenExpireAt.IsZero() {
		doc.TokenExpireAt = acc.TokenExpireAt.Unix()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert bank account: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BankAccountRepository) FindByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBankAccountNotFound
	}

	var m mongoBankAccount
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("find bank account: %w", err)
	}
	return m.toDomain(), nil
}

func (r *BankAccountRepository) List(ctx context.Context) ([]*domain.BankAccount, error) {
	return r.find(ctx, bson.M{})
}

func (r *BankAccountRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.BankAccount, error) {
	return r.find(ctx, bson.M{"organization_id": organizationID})
}

func (r *BankAccountRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.BankAccount, error) {
	return r.find(ctx, bson.M{"member_id": memberID})
}

func (r *BankAccountRepository) ListConnected(ctx context.Context, organizationID string) ([]*domain.BankAccount, error) {
	return r.find(ctx, bson.M{"organization_id": organizationID, "is_connected": true})
}

func (r *BankAccountRepository) MarkSynced(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBankAccountNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"last_sync_at": at.Unix()}})
	if err != nil {
		return fmt.Errorf("mark bank account synced: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBankAccountNotFound
	}
	return nil
}

func (r *BankAccountRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBankAccountNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBankAccountNotFound
	}
	return nil
}

func (r *BankAccountRepository) find(ctx context.Context, filter bson.M) ([]*domain.BankAccount, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []*domain.BankAccount
	for cur.Next(ctx) {
		var m mongoBankAccount
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode bank account: %w", err)
		}
		accounts = append(accounts, m.toDomain())
	}
	return accounts, cur.Err()
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

const transactionCollection = "transactions"

// TransactionRepository stores expenses and incomes in a single collection
// discriminated by the kind field. Totals are computed server-side with
// aggregation pipelines so list payloads never have to be folded in the API.
type TransactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{coll: db.Collection(transactionCollection)}
}

type mongoTransaction struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Kind              string             `bson:"kind"`
	OrganizationID    string             `bson:"organization_id"`
	TargetMemberID    string             `bson:"target_member_id,omitempty"`
	BankTransactionID string             `bson:"bank_transaction_id,omitempty"`
	Name              string             `bson:"name"`
	Amount            int64              `bson:"amount"`
	Date              int64              `bson:"date"`
	Description       string             `bson:"description,omitempty"`
	Category          string             `bson:"category,omitempty"`
}

func (m mongoTransaction) toDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:                m.ID.Hex(),
		Kind:              domain.FlowKind(m.Kind),
		OrganizationID:    m.OrganizationID,
		TargetMemberID:    m.TargetMemberID,
		BankTransactionID: m.BankTransactionID,
		Name:              m.Name,
		Amount:            money.Cents(m.Amount),
		Date:              unixToTime(m.Date),
		Description:       m.Description,
		Category:          m.Category,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	doc := mongoTransaction{
		Kind:              string(tx.Kind),
		OrganizationID:    tx.OrganizationID,
		TargetMemberID:    tx.TargetMemberID,
		BankTransactionID: tx.BankTransactionID,
		Name:              tx.Name,
		Amount:            int64(tx.Amount),
		Date:              tx.Date.Unix(),
		Description:       tx.Description,
		Category:          tx.Category,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", tx.Kind, err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, kind domain.FlowKind, id string) (*domain.Transaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTransactionNotFound
	}

	var m mongoTransaction
	filter := bson.M{"_id": oid, "kind": string(kind)}
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	return m.toDomain(), nil
}

func (r *TransactionRepository) List(ctx context.Context, kind domain.FlowKind) ([]*domain.Transaction, error) {
	return r.find(ctx, bson.M{"kind": string(kind)})
}

func (r *TransactionRepository) ListByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) ([]*domain.Transaction, error) {
	return r.find(ctx, bson.M{"kind": string(kind), "organization_id": organizationID})
}

func (r *TransactionRepository) ListByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) ([]*domain.Transaction, error) {
	return r.find(ctx, bson.M{"kind": string(kind), "organization_id": organizationID, "category": category})
}

func (r *TransactionRepository) TotalByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) (money.Cents, error) {
	return r.total(ctx, bson.M{"kind": string(kind), "organization_id": organizationID})
}

func (r *TransactionRepository) TotalByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) (money.Cents, error) {
	return r.total(ctx, bson.M{"kind": string(kind), "organization_id": organizationID, "category": category})
}

// CategoryTotals groups an organization's records of one kind by category and
// sums their amounts. Records without a category land in the "" bucket.
func (r *TransactionRepository) CategoryTotals(ctx context.Context, kind domain.FlowKind, organizationID string) ([]domain.CategoryTotal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"kind": string(kind), "organization_id": organizationID}}},
		{{Key: "$group", Value: bson.M{"_id": "$category", "total": bson.M{"$sum": "$amount"}}}},
		{{Key: "$sort", Value: bson.M{"total": -1}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate category totals: %w", err)
	}
	defer cur.Close(ctx)

	var totals []domain.CategoryTotal
	for cur.Next(ctx) {
		var row struct {
			Category string `bson:"_id"`
			Total    int64  `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode category total: %w", err)
		}
		totals = append(totals, domain.CategoryTotal{Category: row.Category, Total: money.Cents(row.Total)})
	}
	return totals, cur.Err()
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	oid, err := primitive.ObjectIDFromHex(tx.ID)
	if err != nil {
		return domain.ErrTransactionNotFound
	}

	set := bson.M{
		"target_member_id": tx.TargetMemberID,
		"name":             tx.Name,
		"amount":           int64(tx.Amount),
		"date":             tx.Date.Unix(),
		"description":      tx.Description,
		"category":         tx.Category,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "kind": string(tx.Kind)}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update %s: %w", tx.Kind, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, kind domain.FlowKind, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTransactionNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "kind": string(kind)})
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) find(ctx context.Context, filter bson.M) ([]*domain.Transaction, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer cur.Close(ctx)

	var txs []*domain.Transaction
	for cur.Next(ctx) {
		var m mongoTransaction
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		txs = append(txs, m.toDomain())
	}
	return txs, cur.Err()
}

func (r *TransactionRepository) total(ctx context.Context, match bson.M) (money.Cents, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate total: %w", err)
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, fmt.Errorf("decode total: %w", err)
		}
		return money.Cents(row.Total), nil
	}
	return 0, cur.Err()
}

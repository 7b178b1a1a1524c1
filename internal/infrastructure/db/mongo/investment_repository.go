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

const investmentCollection = "investments"

type InvestmentRepository struct {
	coll *mongo.Collection
}

func NewInvestmentRepository(db *mongo.Database) *InvestmentRepository {
	return &InvestmentRepository{coll: db.Collection(investmentCollection)}
}

type mongoInvestment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	OrganizationID string             `bson:"organization_id"`
	MemberID       string             `bson:"member_id"`
	Name           string             `bson:"name"`
	Category       string             `bson:"category"`
	Amount         int64              `bson:"amount"`
	PurchaseDate   int64              `bson:"purchase_date"`
	Description    string             `bson:"description,omitempty"`
}

func (m mongoInvestment) toDomain() *domain.Investment {
	return &domain.Investment{
		ID:             m.ID.Hex(),
		OrganizationID: m.OrganizationID,
		MemberID:       m.MemberID,
		Name:           m.Name,
		Category:       m.Category,
		Amount:         money.Cents(m.Amount),
		PurchaseDate:   unixToTime(m.PurchaseDate),
		Description:    m.Description,
	}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	doc := mongoInvestment{
		OrganizationID: inv.OrganizationID,
		MemberID:       inv.MemberID,
		Name:           inv.Name,
		Category:       inv.Category,
		Amount:         int64(inv.Amount),
		PurchaseDate:   inv.PurchaseDate.Unix(),
		Description:    inv.Description,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert investment: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *InvestmentRepository) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvestmentNotFound
	}

	var m mongoInvestment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("find investment: %w", err)
	}
	return m.toDomain(), nil
}

func (r *InvestmentRepository) List(ctx context.Context) ([]*domain.Investment, error) {
	return r.find(ctx, bson.M{})
}

func (r *InvestmentRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Investment, error) {
	return r.find(ctx, bson.M{"organization_id": organizationID})
}

func (r *InvestmentRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Investment, error) {
	return r.find(ctx, bson.M{"member_id": memberID})
}

func (r *InvestmentRepository) TotalByOrganization(ctx context.Context, organizationID string) (money.Cents, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"organization_id": organizationID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate investment total: %w", err)
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, fmt.Errorf("decode investment total: %w", err)
		}
		return money.Cents(row.Total), nil
	}
	return 0, cur.Err()
}

func (r *InvestmentRepository) Update(ctx context.Context, inv *domain.Investment) error {
	oid, err := primitive.ObjectIDFromHex(inv.ID)
	if err != nil {
		return domain.ErrInvestmentNotFound
	}

	set := bson.M{
		"name":          inv.Name,
		"category":      inv.Category,
		"amount":        int64(inv.Amount),
		"purchase_date": inv.PurchaseDate.Unix(),
		"description":   inv.Description,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvestmentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInvestmentNotFound
	}
	return nil
}

func (r *InvestmentRepository) find(ctx context.Context, filter bson.M) ([]*domain.Investment, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer cur.Close(ctx)

	var invs []*domain.Investment
	for cur.Next(ctx) {
		var m mongoInvestment
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode investment: %w", err)
		}
		invs = append(invs, m.toDomain())
	}
	return invs, cur.Err()
}

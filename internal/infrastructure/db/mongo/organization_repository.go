package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

const organizationCollection = "organizations"

type OrganizationRepository struct {
	coll *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) *OrganizationRepository {
	return &OrganizationRepository{coll: db.Collection(organizationCollection)}
}

type mongoOrganization struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	IsActive      bool               `bson:"is_active"`
	CreatedAt     int64              `bson:"created_at"`
	TrialExpireAt int64              `bson:"trial_expire_at,omitempty"`
}

func (m mongoOrganization) toDomain() *domain.Organization {
	return &domain.Organization{
		ID:            m.ID.Hex(),
		Name:          m.Name,
		IsActive:      m.IsActive,
		CreatedAt:     unixToTime(m.CreatedAt),
		TrialExpireAt: unixToTime(m.TrialExpireAt),
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	doc := mongoOrganization{
		Name:      org.Name,
		IsActive:  org.IsActive,
		CreatedAt: org.CreatedAt.Unix(),
	}
	if !org.TrialExpireAt.IsZero() {
		doc.TrialExpireAt = org.TrialExpireAt.Unix()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert organization: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrganizationNotFound
	}

	var m mongoOrganization
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return m.toDomain(), nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrganizationRepository) ListActive(ctx context.Context) ([]*domain.Organization, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *OrganizationRepository) find(ctx context.Context, filter bson.M) ([]*domain.Organization, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer cur.Close(ctx)

	var orgs []*domain.Organization
	for cur.Next(ctx) {
		var m mongoOrganization
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode organization: %w", err)
		}
		orgs = append(orgs, m.toDomain())
	}
	return orgs, cur.Err()
}

func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	oid, err := primitive.ObjectIDFromHex(org.ID)
	if err != nil {
		return domain.ErrOrganizationNotFound
	}

	set := bson.M{
		"name":      org.Name,
		"is_active": org.IsActive,
	}
	if !org.TrialExpireAt.IsZero() {
		set["trial_expire_at"] = org.TrialExpireAt.Unix()
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrganizationNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

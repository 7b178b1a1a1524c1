package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

const memberCollection = "members"

type MemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{coll: db.Collection(memberCollection)}
}

type mongoMember struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	OrganizationID string             `bson:"organization_id"`
	UserID         string             `bson:"user_id"`
	RoleID         string             `bson:"role_id"`
}

func (m mongoMember) toDomain() *domain.Member {
	return &domain.Member{
		ID:             m.ID.Hex(),
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		RoleID:         m.RoleID,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	doc := mongoMember{
		OrganizationID: member.OrganizationID,
		UserID:         member.UserID,
		RoleID:         member.RoleID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMemberExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}

	var m mongoMember
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return m.toDomain(), nil
}

func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	return r.find(ctx, bson.M{})
}

func (r *MemberRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Member, error) {
	return r.find(ctx, bson.M{"organization_id": organizationID})
}

func (r *MemberRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Member, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MemberRepository) FindByUserAndOrganization(ctx context.Context, userID, organizationID string) (*domain.Member, error) {
	var m mongoMember
	filter := bson.M{"user_id": userID, "organization_id": organizationID}
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member by user and organization: %w", err)
	}
	return m.toDomain(), nil
}

func (r *MemberRepository) UpdateRole(ctx context.Context, id, roleID string) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role_id": roleID}})
	if err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMemberNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMemberNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) find(ctx context.Context, filter bson.M) ([]*domain.Member, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer cur.Close(ctx)

	var members []*domain.Member
	for cur.Next(ctx) {
		var m mongoMember
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode member: %w", err)
		}
		members = append(members, m.toDomain())
	}
	return members, cur.Err()
}

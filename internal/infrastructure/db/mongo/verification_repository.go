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

const verificationCollection = "verification_codes"

// VerificationCodeRepository stores one-time email verification codes.
// Expired documents are reaped by the TTL index on expire_at.
type VerificationCodeRepository struct {
	coll *mongo.Collection
}

func NewVerificationCodeRepository(db *mongo.Database) *VerificationCodeRepository {
	return &VerificationCodeRepository{coll: db.Collection(verificationCollection)}
}

type mongoVerificationCode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail string             `bson:"user_email"`
	Code      string             `bson:"code"`
	ExpiresAt time.Time          `bson:"expire_at"`
	Used      bool               `bson:"used"`
}

func (m mongoVerificationCode) toDomain() *domain.VerificationCode {
	return &domain.VerificationCode{
		ID:        m.ID.Hex(),
		UserEmail: m.UserEmail,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt.UTC(),
		Used:      m.Used,
	}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, code *domain.VerificationCode) (*domain.VerificationCode, error) {
	doc := mongoVerificationCode{
		UserEmail: code.UserEmail,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		Used:      code.Used,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert verification code: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *VerificationCodeRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	var m mongoVerificationCode
	filter := bson.M{"user_email": email, "code": code}
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInvalidVerificationCode
		}
		return nil, fmt.Errorf("find verification code: %w", err)
	}
	return m.toDomain(), nil
}

func (r *VerificationCodeRepository) MarkUsed(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidVerificationCode
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"used": true}})
	if err != nil {
		return fmt.Errorf("mark verification code used: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvalidVerificationCode
	}
	return nil
}

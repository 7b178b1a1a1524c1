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

const (
	goalCollection         = "goals"
	contributionCollection = "goal_contributions"
)

type GoalRepository struct {
	goals         *mongo.Collection
	contributions *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{
		goals:         db.Collection(goalCollection),
		contributions: db.Collection(contributionCollection),
	}
}

type mongoGoal struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	OrganizationID string             `bson:"organization_id"`
	Name           string             `bson:"name"`
	DesiredAmount  int64              `bson:"desired_amount"`
	CreatedAt      int64              `bson:"created_at"`
	DueDate        int64              `bson:"due_date"`
	Description    string             `bson:"description,omitempty"`
}

type mongoContribution struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	GoalID           string             `bson:"goal_id"`
	Value            int64              `bson:"value"`
	ContributionDate int64              `bson:"contribution_date"`
	Description      string             `bson:"description,omitempty"`
}

func (m mongoGoal) toDomain() *domain.Goal {
	return &domain.Goal{
		ID:             m.ID.Hex(),
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		DesiredAmount:  money.Cents(m.DesiredAmount),
		CreatedAt:      unixToTime(m.CreatedAt),
		DueDate:        unixToTime(m.DueDate),
		Description:    m.Description,
	}
}

func (m mongoContribution) toDomain() *domain.GoalContribution {
	return &domain.GoalContribution{
		ID:               m.ID.Hex(),
		GoalID:           m.GoalID,
		Value:            money.Cents(m.Value),
		ContributionDate: unixToTime(m.ContributionDate),
		Description:      m.Description,
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	doc := mongoGoal{
		OrganizationID: goal.OrganizationID,
		Name:           goal.Name,
		DesiredAmount:  int64(goal.DesiredAmount),
		CreatedAt:      goal.CreatedAt.Unix(),
		DueDate:        goal.DueDate.Unix(),
		Description:    goal.Description,
	}

	res, err := r.goals.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id string) (*domain.Goal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGoalNotFound
	}

	var m mongoGoal
	if err := r.goals.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return m.toDomain(), nil
}

func (r *GoalRepository) List(ctx context.Context) ([]*domain.Goal, error) {
	return r.find(ctx, bson.M{})
}

func (r *GoalRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Goal, error) {
	return r.find(ctx, bson.M{"organization_id": organizationID})
}

func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	oid, err := primitive.ObjectIDFromHex(goal.ID)
	if err != nil {
		return domain.ErrGoalNotFound
	}

	set := bson.M{
		"name":           goal.Name,
		"desired_amount": int64(goal.DesiredAmount),
		"due_date":       goal.DueDate.Unix(),
		"description":    goal.Description,
	}

	res, err := r.goals.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal and its contributions. Contributions are removed
// first so a crash in between leaves no orphaned deposits.
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGoalNotFound
	}

	if _, err := r.contributions.DeleteMany(ctx, bson.M{"goal_id": id}); err != nil {
		return fmt.Errorf("delete goal contributions: %w", err)
	}

	res, err := r.goals.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) CreateContribution(ctx context.Context, c *domain.GoalContribution) (*domain.GoalContribution, error) {
	doc := mongoContribution{
		GoalID:           c.GoalID,
		Value:            int64(c.Value),
		ContributionDate: c.ContributionDate.Unix(),
		Description:      c.Description,
	}

	res, err := r.contributions.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contribution: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *GoalRepository) ListContributions(ctx context.Context, goalID string) ([]*domain.GoalContribution, error) {
	cur, err := r.contributions.Find(ctx, bson.M{"goal_id": goalID})
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.GoalContribution
	for cur.Next(ctx) {
		var m mongoContribution
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode contribution: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cur.Err()
}

func (r *GoalRepository) TotalContributions(ctx context.Context, goalID string) (money.Cents, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"goal_id": goalID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$value"}}}},
	}

	cur, err := r.contributions.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate contribution total: %w", err)
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, fmt.Errorf("decode contribution total: %w", err)
		}
		return money.Cents(row.Total), nil
	}
	return 0, cur.Err()
}

func (r *GoalRepository) find(ctx context.Context, filter bson.M) ([]*domain.Goal, error) {
	cur, err := r.goals.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer cur.Close(ctx)

	var goals []*domain.Goal
	for cur.Next(ctx) {
		var m mongoGoal
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode goal: %w", err)
		}
		goals = append(goals, m.toDomain())
	}
	return goals, cur.Err()
}

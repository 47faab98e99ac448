package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task/repository"
)

func (s *implStore) InsertTask(ctx context.Context, t model.Task) (model.Task, error) {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.Date.IsZero() {
		t.Date = now
	}
	t.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, t); err != nil {
		s.l.Errorf(ctx, "mongo repository: insert task failed: %v", err)
		return model.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	return t, nil
}

func (s *implStore) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 || limit > repository.MaxListLimit {
		limit = repository.MaxListLimit
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, listFilter(opt), findOpts)
	if err != nil {
		s.l.Errorf(ctx, "mongo repository: list tasks failed: %v", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (s *implStore) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if opt.Title != "" {
		set["title"] = opt.Title
	}
	if opt.Date != nil {
		set["date"] = *opt.Date
	}
	if opt.Priority != "" {
		set["priority"] = opt.Priority
	}
	if opt.Status != "" {
		set["status"] = opt.Status
	}

	res := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated model.Task
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return model.Task{}, repository.ErrNotFound
		}
		s.l.Errorf(ctx, "mongo repository: update task %s failed: %v", id, err)
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

func (s *implStore) DeleteTask(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		s.l.Errorf(ctx, "mongo repository: delete task %s failed: %v", id, err)
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// listFilter builds the conjunctive bson filter for the given options.
func listFilter(opt repository.ListTasksOptions) bson.M {
	filter := bson.M{}
	if opt.DateRange != nil {
		filter["date"] = bson.M{
			"$gte": opt.DateRange.From,
			"$lt":  opt.DateRange.To,
		}
	}
	if opt.Priority != "" {
		filter["priority"] = opt.Priority
	}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	return filter
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task/repository"
)

// Summarize aggregates counts over the filtered task set in a single
// pipeline, pushing the matched records alongside the counters.
func (s *implStore) Summarize(ctx context.Context, opt repository.ListTasksOptions) (repository.SummaryResult, error) {
	pipeline := []bson.M{
		{"$match": listFilter(opt)},
		{"$sort": bson.M{"date": 1}},
		{"$group": bson.M{
			"_id":     nil,
			"total":   bson.M{"$sum": 1},
			"high":    countCond("$priority", string(model.PriorityHigh)),
			"medium":  countCond("$priority", string(model.PriorityMedium)),
			"low":     countCond("$priority", string(model.PriorityLow)),
			"pending": countCond("$status", string(model.StatusPending)),
			"done":    countCond("$status", string(model.StatusDone)),
			"tasks":   bson.M{"$push": "$$ROOT"},
		}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		s.l.Errorf(ctx, "mongo repository: summary aggregation failed: %v", err)
		return repository.SummaryResult{}, fmt.Errorf("failed to summarize tasks: %w", err)
	}
	defer cursor.Close(ctx)

	// An empty collection produces no group document: that is a valid,
	// all-zero summary.
	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return repository.SummaryResult{}, fmt.Errorf("failed to read summary: %w", err)
		}
		return repository.SummaryResult{}, nil
	}

	var doc struct {
		Total   int          `bson:"total"`
		High    int          `bson:"high"`
		Medium  int          `bson:"medium"`
		Low     int          `bson:"low"`
		Pending int          `bson:"pending"`
		Done    int          `bson:"done"`
		Tasks   []model.Task `bson:"tasks"`
	}
	if err := cursor.Decode(&doc); err != nil {
		return repository.SummaryResult{}, fmt.Errorf("failed to decode summary: %w", err)
	}

	return repository.SummaryResult{
		Total:   doc.Total,
		High:    doc.High,
		Medium:  doc.Medium,
		Low:     doc.Low,
		Pending: doc.Pending,
		Done:    doc.Done,
		Tasks:   doc.Tasks,
	}, nil
}

func countCond(field, value string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{field, value}},
		1,
		0,
	}}}
}

package converter

import (
	"fmt"
	"time"

	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
)

// ActivityToResponse converts an Activity entity to ActivityResponse DTO with a label relative to now
func ActivityToResponse(activity *entity.Activity, now time.Time) *dto.ActivityResponse {
	if activity == nil {
		return nil
	}

	return &dto.ActivityResponse{
		ID:          activity.ID,
		Action:      activity.Action,
		Title:       activity.Title,
		Description: activity.Description,
		Time:        RelativeTime(activity.CreatedAt, now),
		CreatedAt:   activity.CreatedAt,
	}
}

// ActivitiesToResponses converts a slice of Activity entities to slice of ActivityResponse DTOs
func ActivitiesToResponses(activities []entity.Activity, now time.Time) []dto.ActivityResponse {
	responses := make([]dto.ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = *ActivityToResponse(&activities[i], now)
	}
	return responses
}

// RelativeTime renders the feed label for t: "just now", "5m ago", "2h ago", "3d ago"
func RelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed/time.Minute))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed/time.Hour))
	}
	return fmt.Sprintf("%dd ago", int(elapsed/(24*time.Hour)))
}

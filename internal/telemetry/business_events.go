package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// WallEvents provides helper methods for tracing wall operations
// These are higher-level events beyond HTTP/DB tracing (e.g. "post was reacted to")
type WallEvents struct {
	tracer trace.Tracer
}

// NewWallEvents creates a new wall events tracer
func NewWallEvents() *WallEvents {
	return &WallEvents{
		tracer: otel.Tracer("freedomwall/wall"),
	}
}

// TraceListPosts creates a span for feed and profile listings
func (we *WallEvents) TraceListPosts(ctx context.Context, ownerID string) (context.Context, trace.Span) {
	ctx, span := we.tracer.Start(ctx, "wall.list_posts")
	if ownerID != "" {
		span.SetAttributes(attribute.String("post.owner_id", ownerID))
	}
	return ctx, span
}

// TraceCreatePost creates a span for post creation
func (we *WallEvents) TraceCreatePost(ctx context.Context, userID string, imageCount int) (context.Context, trace.Span) {
	return we.tracer.Start(ctx, "wall.create_post",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("post.image_count", imageCount),
		),
	)
}

// TraceReact creates a span for a reaction toggle
func (we *WallEvents) TraceReact(ctx context.Context, postID, userID, reactionType string) (context.Context, trace.Span) {
	return we.tracer.Start(ctx, "wall.react",
		trace.WithAttributes(
			attribute.String("post.id", postID),
			attribute.String("user.id", userID),
			attribute.String("reaction.type", reactionType),
		),
	)
}

// TraceComment creates a span for a comment append
func (we *WallEvents) TraceComment(ctx context.Context, postID, userID string) (context.Context, trace.Span) {
	return we.tracer.Start(ctx, "wall.comment",
		trace.WithAttributes(
			attribute.String("post.id", postID),
			attribute.String("user.id", userID),
		),
	)
}

// TraceProfileUpdate creates a span for avatar, cover photo and profile edits
func (we *WallEvents) TraceProfileUpdate(ctx context.Context, userID, kind string) (context.Context, trace.Span) {
	return we.tracer.Start(ctx, "wall.profile_update",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("profile.kind", kind),
		),
	)
}

// End records err on span (if any) and ends it
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

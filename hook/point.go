package hook

import (
	"context"

	"github.com/dshills/resthook/bundle"
)

// Point identifies one of the fourteen lifecycle moments at which handler
// callbacks fire.
type Point int

const (
	// PointPreReadList fires before a list is fetched.
	PointPreReadList Point = iota
	// PointPostReadList fires after a list is fetched.
	PointPostReadList
	// PointPreReadDetail fires before a single object is serialized.
	PointPreReadDetail
	// PointPostReadDetail fires after a single object is serialized.
	PointPostReadDetail
	// PointPreCreateDetail fires before an object is created.
	PointPreCreateDetail
	// PointPostCreateDetail fires after an object is created.
	PointPostCreateDetail
	// PointPreUpdateDetail fires before a single object is updated.
	PointPreUpdateDetail
	// PointPostUpdateDetail fires after a single object is updated.
	PointPostUpdateDetail
	// PointPreUpdateList fires before a list update.
	PointPreUpdateList
	// PointPostUpdateList fires after a list update.
	PointPostUpdateList
	// PointPreDeleteList fires before a list delete.
	PointPreDeleteList
	// PointPostDeleteList fires after a list delete.
	PointPostDeleteList
	// PointPreDeleteDetail fires before a single object is deleted.
	PointPreDeleteDetail
	// PointPostDeleteDetail fires after a single object is deleted.
	PointPostDeleteDetail
)

// String returns the snake_case name of the extension point. The names
// double as the callback function names looked up in script handlers.
func (p Point) String() string {
	switch p {
	case PointPreReadList:
		return "pre_read_list"
	case PointPostReadList:
		return "post_read_list"
	case PointPreReadDetail:
		return "pre_read_detail"
	case PointPostReadDetail:
		return "post_read_detail"
	case PointPreCreateDetail:
		return "pre_create_detail"
	case PointPostCreateDetail:
		return "post_create_detail"
	case PointPreUpdateDetail:
		return "pre_update_detail"
	case PointPostUpdateDetail:
		return "post_update_detail"
	case PointPreUpdateList:
		return "pre_update_list"
	case PointPostUpdateList:
		return "post_update_list"
	case PointPreDeleteList:
		return "pre_delete_list"
	case PointPostDeleteList:
		return "post_delete_list"
	case PointPreDeleteDetail:
		return "pre_delete_detail"
	case PointPostDeleteDetail:
		return "post_delete_detail"
	default:
		return "unknown"
	}
}

// Points returns all extension points in lifecycle order.
func Points() []Point {
	return []Point{
		PointPreReadList, PointPostReadList,
		PointPreReadDetail, PointPostReadDetail,
		PointPreCreateDetail, PointPostCreateDetail,
		PointPreUpdateDetail, PointPostUpdateDetail,
		PointPreUpdateList, PointPostUpdateList,
		PointPreDeleteList, PointPostDeleteList,
		PointPreDeleteDetail, PointPostDeleteDetail,
	}
}

// Invoke dispatches a point value to the corresponding Handler method.
// Hosts that track the current operation as a Point use this instead of
// switching on the method set themselves.
func Invoke(ctx context.Context, h Handler, p Point, objects bundle.ObjectList, b *bundle.Bundle) error {
	switch p {
	case PointPreReadList:
		return h.PreReadList(ctx, objects, b)
	case PointPostReadList:
		return h.PostReadList(ctx, objects, b)
	case PointPreReadDetail:
		return h.PreReadDetail(ctx, objects, b)
	case PointPostReadDetail:
		return h.PostReadDetail(ctx, objects, b)
	case PointPreCreateDetail:
		return h.PreCreateDetail(ctx, objects, b)
	case PointPostCreateDetail:
		return h.PostCreateDetail(ctx, objects, b)
	case PointPreUpdateDetail:
		return h.PreUpdateDetail(ctx, objects, b)
	case PointPostUpdateDetail:
		return h.PostUpdateDetail(ctx, objects, b)
	case PointPreUpdateList:
		return h.PreUpdateList(ctx, objects, b)
	case PointPostUpdateList:
		return h.PostUpdateList(ctx, objects, b)
	case PointPreDeleteList:
		return h.PreDeleteList(ctx, objects, b)
	case PointPostDeleteList:
		return h.PostDeleteList(ctx, objects, b)
	case PointPreDeleteDetail:
		return h.PreDeleteDetail(ctx, objects, b)
	case PointPostDeleteDetail:
		return h.PostDeleteDetail(ctx, objects, b)
	default:
		return ErrUnknownPoint
	}
}

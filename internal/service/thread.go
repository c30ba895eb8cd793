package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qixiao/douyin-lite/internal/entity"
)

// tempIDPrefix marks comments created locally, before any backend has
// confirmed them.
const tempIDPrefix = "temp_"

// IsTempCommentID reports whether the id belongs to a locally created,
// not yet confirmed comment.
func IsTempCommentID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}

// Thread holds the session view of one video's comments: the flat
// collection with per-comment interaction state plus the set of
// comments whose replies are expanded.
//
// All updates are optimistic and local: likes, hides and added comments
// diverge from the server baseline for the lifetime of the session and
// are never reconciled against a backend. That is intentional.
type Thread struct {
	mu       sync.RWMutex
	comments []entity.CommentState
	expanded map[string]struct{}
}

// NewThread projects the seed comments into session state: not liked,
// not hidden, local like counter starting from the server baseline.
func NewThread(seed []entity.Comment) *Thread {
	states := make([]entity.CommentState, 0, len(seed))
	for _, c := range seed {
		states = append(states, entity.CommentState{
			Comment:        c,
			LocalLikeCount: c.Stats.LikeCount,
		})
	}
	return &Thread{
		comments: states,
		expanded: make(map[string]struct{}),
	}
}

// TopLevel returns the top-level comments newest first. Equal
// timestamps keep their insertion order.
func (t *Thread) TopLevel() []entity.CommentState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var top []entity.CommentState
	for _, c := range t.comments {
		if c.IsTopLevel() {
			top = append(top, c)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].CreateTime > top[j].CreateTime
	})

	return top
}

// Replies groups the non-top-level comments by parent id, oldest first
// so a conversation reads chronologically under its parent. A group is
// produced even when its parent id matches no comment in the thread.
func (t *Thread) Replies() map[string][]entity.CommentState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	replies := make(map[string][]entity.CommentState)
	for _, c := range t.comments {
		if !c.IsTopLevel() {
			replies[c.ParentCommentID] = append(replies[c.ParentCommentID], c)
		}
	}

	for _, group := range replies {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreateTime < group[j].CreateTime
		})
	}

	return replies
}

// Add inserts a new top-level comment at the front of the collection.
// Content blank after trimming is a silent no-op: the input widget is
// expected to suppress the call, the store only guards against it.
func (t *Thread) Add(content, authorID string) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return
	}

	c := entity.CommentState{
		Comment: entity.Comment{
			ID:         tempIDPrefix + uuid.New().String(),
			Content:    trimmed,
			CreateTime: time.Now().UnixMilli(),
			Author: entity.Author{
				ID:        authorID,
				Name:      defaultAuthorName,
				AvatarURL: defaultAvatarURL,
			},
			ParentCommentID: entity.RootCommentID,
			Pictures:        []string{},
		},
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.comments = append([]entity.CommentState{c}, t.comments...)
}

// ToggleLike flips the like state of the comment and moves the local
// counter by one. Unknown ids are ignored.
func (t *Thread) ToggleLike(commentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.comments {
		if t.comments[i].ID == commentID {
			if t.comments[i].IsLiked {
				t.comments[i].IsLiked = false
				t.comments[i].LocalLikeCount--
			} else {
				t.comments[i].IsLiked = true
				t.comments[i].LocalLikeCount++
			}
			return
		}
	}
}

// Hide marks the comment as hidden. The comment stays in the
// collection; there is no unhide. Idempotent, unknown ids are ignored.
func (t *Thread) Hide(commentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.comments {
		if t.comments[i].ID == commentID {
			t.comments[i].IsHidden = true
			return
		}
	}
}

// ToggleReplies flips whether the replies under the comment are
// expanded.
func (t *Thread) ToggleReplies(commentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.expanded[commentID]; ok {
		delete(t.expanded, commentID)
	} else {
		t.expanded[commentID] = struct{}{}
	}
}

// Expanded returns the ids with expanded replies, sorted for stable
// output.
func (t *Thread) Expanded() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.expanded))
	for id := range t.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns a snapshot of the full collection in insertion order,
// hidden comments included.
func (t *Thread) All() []entity.CommentState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]entity.CommentState, len(t.comments))
	copy(out, t.comments)
	return out
}

// Len is the total number of comments, hidden included.
func (t *Thread) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.comments)
}

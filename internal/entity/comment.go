package entity

// RootCommentID is the sentinel parent id marking a top-level comment.
const RootCommentID = "0"

type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
}

type CommentStats struct {
	LikeCount       int `json:"like_count"`
	SubCommentCount int `json:"sub_comment_count"`
}

type Comment struct {
	ID              string       `json:"id"`
	Content         string       `json:"content"`
	CreateTime      int64        `json:"create_time"` // unix milliseconds
	IPLocation      string       `json:"ip_location,omitempty"`
	Author          Author       `json:"author"`
	Stats           CommentStats `json:"stats"`
	ParentCommentID string       `json:"parent_comment_id"`
	Pictures        []string     `json:"pictures,omitempty"`
}

// IsTopLevel reports whether the comment is a root entry of its thread.
func (c *Comment) IsTopLevel() bool {
	return c.ParentCommentID == RootCommentID
}

// CommentState wraps a Comment with session-local interaction state.
// LocalLikeCount starts from the server-reported baseline and diverges
// from it for the rest of the session; it is never re-synced.
type CommentState struct {
	Comment
	IsLiked        bool `json:"is_liked"`
	IsHidden       bool `json:"is_hidden"`
	LocalLikeCount int  `json:"local_like_count"`
}

type CreateCommentRequest struct {
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
}

type ThreadResponse struct {
	VideoID  string                    `json:"video_id"`
	Comments []CommentState            `json:"comments"`
	Replies  map[string][]CommentState `json:"replies"`
	Expanded []string                  `json:"expanded"`
}

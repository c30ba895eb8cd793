// Package mock stands in for the backend: it loads crawler-style JSON
// fixtures, normalizes them into clean entities and serves them with an
// optional artificial delay.
package mock

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/qixiao/douyin-lite/internal/entity"
)

// flexCount decodes a count that the crawler emits either as a number
// or as a string; anything unparsable becomes zero.
type flexCount int

func (f *flexCount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexCount(n)
	return nil
}

// RawContent is the crawler's video record.
type RawContent struct {
	AwemeID          string    `json:"aweme_id"`
	Title            string    `json:"title"`
	Desc             string    `json:"desc"`
	CreateTime       int64     `json:"create_time"` // unix seconds
	UserID           string    `json:"user_id"`
	Nickname         string    `json:"nickname"`
	Avatar           string    `json:"avatar"`
	LikedCount       flexCount `json:"liked_count"`
	CollectedCount   flexCount `json:"collected_count"`
	CommentCount     flexCount `json:"comment_count"`
	ShareCount       flexCount `json:"share_count"`
	CoverURL         string    `json:"cover_url"`
	VideoDownloadURL string    `json:"video_download_url"`
	SourceKeyword    string    `json:"source_keyword"`
}

// RawComment is the crawler's comment record.
type RawComment struct {
	CommentID       string    `json:"comment_id"`
	AwemeID         string    `json:"aweme_id"`
	Content         string    `json:"content"`
	CreateTime      int64     `json:"create_time"` // unix seconds
	IPLocation      string    `json:"ip_location"`
	UserID          string    `json:"user_id"`
	Nickname        string    `json:"nickname"`
	Avatar          string    `json:"avatar"`
	LikeCount       flexCount `json:"like_count"`
	SubCommentCount flexCount `json:"sub_comment_count"`
	ParentCommentID string    `json:"parent_comment_id"`
	Pictures        string    `json:"pictures"`
}

const (
	fallbackNickname  = "anonymous"
	fallbackAvatarURL = "https://sf6-cdn-tos.douyinstatic.com/img/user-avatar/default~300x300.image"
	fallbackTitle     = "untitled"
)

// NormalizeComment maps a raw crawler comment onto the entity shape,
// applying per-field fallbacks and converting seconds to milliseconds.
func NormalizeComment(raw RawComment) entity.Comment {
	return entity.Comment{
		ID:         raw.CommentID,
		Content:    raw.Content,
		CreateTime: raw.CreateTime * 1000,
		IPLocation: raw.IPLocation,
		Author: entity.Author{
			ID:        raw.UserID,
			Name:      fallback(raw.Nickname, fallbackNickname),
			AvatarURL: fallback(raw.Avatar, fallbackAvatarURL),
		},
		Stats: entity.CommentStats{
			LikeCount:       int(raw.LikeCount),
			SubCommentCount: int(raw.SubCommentCount),
		},
		ParentCommentID: fallback(raw.ParentCommentID, entity.RootCommentID),
		Pictures:        parsePictures(raw.Pictures),
	}
}

// NormalizeContent maps a raw crawler video onto the entity shape,
// without its comments.
func NormalizeContent(raw RawContent) entity.VideoItem {
	title := raw.Title
	if title == "" {
		title = fallback(raw.Desc, fallbackTitle)
	}

	return entity.VideoItem{
		ID:         raw.AwemeID,
		Title:      title,
		Desc:       raw.Desc,
		VideoURL:   raw.VideoDownloadURL,
		CoverURL:   raw.CoverURL,
		CreateTime: raw.CreateTime * 1000,
		Author: entity.Author{
			ID:        raw.UserID,
			Name:      fallback(raw.Nickname, fallbackNickname),
			AvatarURL: fallback(raw.Avatar, fallbackAvatarURL),
		},
		Stats: entity.VideoStats{
			DiggCount:      int(raw.LikedCount),
			CommentCount:   int(raw.CommentCount),
			ShareCount:     int(raw.ShareCount),
			CollectedCount: int(raw.CollectedCount),
		},
		Comments:      []entity.Comment{},
		SourceKeyword: raw.SourceKeyword,
	}
}

// BuildVideos normalizes the crawler records and attaches every
// video's comments, keyed by aweme id.
func BuildVideos(contents []RawContent, comments []RawComment) []entity.VideoItem {
	byAweme := make(map[string][]entity.Comment)
	for _, rc := range comments {
		byAweme[rc.AwemeID] = append(byAweme[rc.AwemeID], NormalizeComment(rc))
	}

	videos := make([]entity.VideoItem, 0, len(contents))
	for _, rc := range contents {
		v := NormalizeContent(rc)
		if attached, ok := byAweme[rc.AwemeID]; ok {
			v.Comments = attached
		}
		videos = append(videos, v)
	}
	return videos
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// parsePictures handles the crawler's picture field, which is either
// empty or a single URL string.
func parsePictures(pictures string) []string {
	p := strings.TrimSpace(pictures)
	if p == "" {
		return []string{}
	}
	return []string{p}
}

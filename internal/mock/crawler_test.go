package mock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qixiao/douyin-lite/internal/entity"
)

func TestFlexCountDecoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "number", in: `123`, want: 123},
		{name: "string number", in: `"4567"`, want: 4567},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage", in: `"12.5w"`, want: 0},
		{name: "null", in: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexCount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, int(f))
		})
	}
}

func TestNormalizeCommentFallbacks(t *testing.T) {
	raw := RawComment{
		CommentID:  "c1",
		AwemeID:    "v1",
		Content:    "nice",
		CreateTime: 1_731_901_200, // seconds
		UserID:     "u1",
		// nickname, avatar, parent id and pictures left empty
	}

	c := NormalizeComment(raw)

	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, int64(1_731_901_200_000), c.CreateTime, "seconds must become milliseconds")
	assert.Equal(t, entity.RootCommentID, c.ParentCommentID)
	assert.Equal(t, fallbackNickname, c.Author.Name)
	assert.Equal(t, fallbackAvatarURL, c.Author.AvatarURL)
	assert.Equal(t, []string{}, c.Pictures)
}

func TestNormalizeCommentPictures(t *testing.T) {
	raw := RawComment{
		CommentID:  "c1",
		Pictures:   "https://example.com/pic.jpeg",
		CreateTime: 1,
	}

	c := NormalizeComment(raw)
	assert.Equal(t, []string{"https://example.com/pic.jpeg"}, c.Pictures)
}

func TestNormalizeContentTitleFallbacks(t *testing.T) {
	withDesc := NormalizeContent(RawContent{AwemeID: "v1", Desc: "the desc"})
	assert.Equal(t, "the desc", withDesc.Title)

	empty := NormalizeContent(RawContent{AwemeID: "v2"})
	assert.Equal(t, fallbackTitle, empty.Title)
}

func TestBuildVideosAttachesComments(t *testing.T) {
	contents := []RawContent{
		{AwemeID: "v1", Title: "first"},
		{AwemeID: "v2", Title: "second"},
	}
	comments := []RawComment{
		{CommentID: "c1", AwemeID: "v1"},
		{CommentID: "c2", AwemeID: "v1"},
		{CommentID: "c3", AwemeID: "missing-video"},
	}

	videos := BuildVideos(contents, comments)
	require.Len(t, videos, 2)

	assert.Len(t, videos[0].Comments, 2)
	assert.Empty(t, videos[1].Comments)
}

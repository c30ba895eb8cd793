package entity

type VideoStats struct {
	DiggCount      int `json:"digg_count"`
	CommentCount   int `json:"comment_count"`
	ShareCount     int `json:"share_count"`
	CollectedCount int `json:"collected_count"`
}

type VideoItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Desc          string     `json:"desc"`
	VideoURL      string     `json:"video_url"`
	CoverURL      string     `json:"cover_url"`
	CreateTime    int64      `json:"create_time"` // unix milliseconds
	Author        Author     `json:"author"`
	Stats         VideoStats `json:"stats"`
	Comments      []Comment  `json:"comments,omitempty"`
	SourceKeyword string     `json:"source_keyword,omitempty"`
}

type VideosResponse struct {
	Videos   []VideoItem `json:"videos"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

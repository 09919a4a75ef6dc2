package dto

// AddCommentRequest 添加评论请求
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentInfo 评论信息
type CommentInfo struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	WorkType   string `json:"work_type"`
	WorkID     uint   `json:"work_id"`
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at"`
}

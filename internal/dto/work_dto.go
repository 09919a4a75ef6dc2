package dto

// CreateWorkForm 发布作品表单
// graphic/audio 需要文件+about，write 需要 title+text，由服务层按类型校验
type CreateWorkForm struct {
	About string `form:"about"`
	Title string `form:"title"`
	Text  string `form:"text"`
}

// WorkInfo 作品信息（不含二进制内容）
type WorkInfo struct {
	ID         uint   `json:"id"`
	Kind       string `json:"kind"`
	About      string `json:"about,omitempty"`
	Title      string `json:"title,omitempty"`
	Text       string `json:"text,omitempty"`
	Mimetype   string `json:"mimetype,omitempty"`
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at"`
}

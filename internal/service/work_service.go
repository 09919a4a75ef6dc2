package service

import (
	"errors"
	"fmt"
	"strings"

	"artshare-go/internal/dto"
	"artshare-go/internal/models"
	"artshare-go/internal/repository"

	"gorm.io/gorm"
)

const timeLayout = "2006-01-02 15:04:05"

// WorkService 作品服务，按类型分发到 graphic/write/audio 三张表
type WorkService struct {
	workRepo *repository.WorkRepository
}

// NewWorkService 创建作品服务
func NewWorkService(workRepo *repository.WorkRepository) *WorkService {
	return &WorkService{workRepo: workRepo}
}

// Create 发布作品，作者取自会话
func (s *WorkService) Create(authorID uint, kind models.WorkKind, form *dto.CreateWorkForm, blob []byte, mimetype string) (*dto.WorkInfo, error) {
	switch kind {
	case models.WorkGraphic:
		if len(blob) == 0 || mimetype == "" {
			return nil, fmt.Errorf("%w: 图像作品需要上传文件", ErrValidation)
		}
		work := &models.Graphic{
			About:    form.About,
			Image:    blob,
			Mimetype: mimetype,
			AuthorID: authorID,
		}
		if err := s.workRepo.Create(work); err != nil {
			return nil, fmt.Errorf("创建作品失败: %w", err)
		}
		info := graphicToInfo(work)
		return &info, nil

	case models.WorkWrite:
		if strings.TrimSpace(form.Title) == "" || strings.TrimSpace(form.Text) == "" {
			return nil, fmt.Errorf("%w: 文字作品需要标题和正文", ErrValidation)
		}
		work := &models.Write{
			Title:    form.Title,
			Text:     form.Text,
			AuthorID: authorID,
		}
		if err := s.workRepo.Create(work); err != nil {
			return nil, fmt.Errorf("创建作品失败: %w", err)
		}
		info := writeToInfo(work)
		return &info, nil

	case models.WorkAudio:
		if len(blob) == 0 || mimetype == "" {
			return nil, fmt.Errorf("%w: 音频作品需要上传文件", ErrValidation)
		}
		work := &models.Audio{
			About:    form.About,
			Sound:    blob,
			Mimetype: mimetype,
			AuthorID: authorID,
		}
		if err := s.workRepo.Create(work); err != nil {
			return nil, fmt.Errorf("创建作品失败: %w", err)
		}
		info := audioToInfo(work)
		return &info, nil
	}

	return nil, fmt.Errorf("%w: 未知的作品类型", ErrValidation)
}

// List 获取指定类型的全部作品（含作者名称）
func (s *WorkService) List(kind models.WorkKind) ([]dto.WorkInfo, error) {
	infos := []dto.WorkInfo{}

	switch kind {
	case models.WorkGraphic:
		works, err := s.workRepo.ListGraphics()
		if err != nil {
			return nil, fmt.Errorf("查询作品失败: %w", err)
		}
		for i := range works {
			infos = append(infos, graphicToInfo(&works[i]))
		}
	case models.WorkWrite:
		works, err := s.workRepo.ListWrites()
		if err != nil {
			return nil, fmt.Errorf("查询作品失败: %w", err)
		}
		for i := range works {
			infos = append(infos, writeToInfo(&works[i]))
		}
	case models.WorkAudio:
		works, err := s.workRepo.ListAudios()
		if err != nil {
			return nil, fmt.Errorf("查询作品失败: %w", err)
		}
		for i := range works {
			infos = append(infos, audioToInfo(&works[i]))
		}
	default:
		return nil, fmt.Errorf("%w: 未知的作品类型", ErrValidation)
	}

	return infos, nil
}

// Get 获取单个作品信息
func (s *WorkService) Get(kind models.WorkKind, id uint) (*dto.WorkInfo, error) {
	var info dto.WorkInfo

	switch kind {
	case models.WorkGraphic:
		work, err := s.workRepo.GetGraphicByID(id)
		if err != nil {
			return nil, wrapLookupErr(err)
		}
		info = graphicToInfo(work)
	case models.WorkWrite:
		work, err := s.workRepo.GetWriteByID(id)
		if err != nil {
			return nil, wrapLookupErr(err)
		}
		info = writeToInfo(work)
	case models.WorkAudio:
		work, err := s.workRepo.GetAudioByID(id)
		if err != nil {
			return nil, wrapLookupErr(err)
		}
		info = audioToInfo(work)
	default:
		return nil, fmt.Errorf("%w: 未知的作品类型", ErrValidation)
	}

	return &info, nil
}

// GetBlob 获取作品的二进制内容和媒体类型
func (s *WorkService) GetBlob(kind models.WorkKind, id uint) ([]byte, string, error) {
	switch kind {
	case models.WorkGraphic:
		work, err := s.workRepo.GetGraphicByID(id)
		if err != nil {
			return nil, "", wrapLookupErr(err)
		}
		return work.Image, work.Mimetype, nil
	case models.WorkAudio:
		work, err := s.workRepo.GetAudioByID(id)
		if err != nil {
			return nil, "", wrapLookupErr(err)
		}
		return work.Sound, work.Mimetype, nil
	}

	// 文字作品没有二进制内容
	return nil, "", fmt.Errorf("%w: 该类型作品没有可下载内容", ErrValidation)
}

// Delete 删除作品：仅作者本人可删，同事务清理指向它的评论
func (s *WorkService) Delete(userID uint, kind models.WorkKind, id uint) error {
	var authorID uint

	switch kind {
	case models.WorkGraphic:
		work, err := s.workRepo.GetGraphicByID(id)
		if err != nil {
			return wrapLookupErr(err)
		}
		authorID = work.AuthorID
	case models.WorkWrite:
		work, err := s.workRepo.GetWriteByID(id)
		if err != nil {
			return wrapLookupErr(err)
		}
		authorID = work.AuthorID
	case models.WorkAudio:
		work, err := s.workRepo.GetAudioByID(id)
		if err != nil {
			return wrapLookupErr(err)
		}
		authorID = work.AuthorID
	default:
		return fmt.Errorf("%w: 未知的作品类型", ErrValidation)
	}

	if authorID != userID {
		return ErrForbidden
	}

	if err := s.workRepo.DeleteWithComments(kind, id); err != nil {
		return fmt.Errorf("删除作品失败: %w", err)
	}
	return nil
}

// wrapLookupErr 把记录不存在转换为服务层错误
func wrapLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("查询失败: %w", err)
}

func graphicToInfo(g *models.Graphic) dto.WorkInfo {
	info := dto.WorkInfo{
		ID:        g.ID,
		Kind:      string(models.WorkGraphic),
		About:     g.About,
		Mimetype:  g.Mimetype,
		AuthorID:  g.AuthorID,
		CreatedAt: g.CreatedAt.Format(timeLayout),
	}
	if g.Author != nil {
		info.AuthorName = g.Author.Name
	}
	return info
}

func writeToInfo(w *models.Write) dto.WorkInfo {
	info := dto.WorkInfo{
		ID:        w.ID,
		Kind:      string(models.WorkWrite),
		Title:     w.Title,
		Text:      w.Text,
		AuthorID:  w.AuthorID,
		CreatedAt: w.CreatedAt.Format(timeLayout),
	}
	if w.Author != nil {
		info.AuthorName = w.Author.Name
	}
	return info
}

func audioToInfo(a *models.Audio) dto.WorkInfo {
	info := dto.WorkInfo{
		ID:        a.ID,
		Kind:      string(models.WorkAudio),
		About:     a.About,
		Mimetype:  a.Mimetype,
		AuthorID:  a.AuthorID,
		CreatedAt: a.CreatedAt.Format(timeLayout),
	}
	if a.Author != nil {
		info.AuthorName = a.Author.Name
	}
	return info
}

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"artshare-go/internal/dto"
	"artshare-go/internal/models"
	"artshare-go/internal/session"
)

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice", "alice@x.com")

	profile, err := env.profile.GetProfile(alice.ID)
	if err != nil {
		t.Fatalf("查询主页失败: %v", err)
	}
	if profile.Name != "alice" {
		t.Errorf("主页信息不匹配: %+v", profile)
	}

	if _, err := env.profile.GetProfile(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound, 实际: %v", err)
	}
}

func TestAvatarRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice", "alice@x.com")

	avatar, mime, err := env.profile.GetAvatar(alice.ID)
	if err != nil {
		t.Fatalf("读取头像失败: %v", err)
	}
	if !bytes.Equal(avatar, []byte{0x89, 0x50, 0x4e, 0x47}) || mime != "image/png" {
		t.Error("头像内容或媒体类型不匹配")
	}
}

func TestEditProfile(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice", "alice@x.com")

	newAvatar := []byte{0xff, 0xd8, 0xff}
	user, err := env.profile.EditProfile(alice.ID, &dto.EditProfileForm{Name: "alice2", About: "new about"}, newAvatar, "image/jpeg")
	if err != nil {
		t.Fatalf("编辑资料失败: %v", err)
	}
	if user.Name != "alice2" || user.About != "new about" {
		t.Errorf("资料未更新: %+v", user)
	}

	// 不上传新头像时保持原头像
	if _, err := env.profile.EditProfile(alice.ID, &dto.EditProfileForm{Name: "alice3"}, nil, ""); err != nil {
		t.Fatalf("编辑资料失败: %v", err)
	}
	avatar, mime, err := env.profile.GetAvatar(alice.ID)
	if err != nil {
		t.Fatalf("读取头像失败: %v", err)
	}
	if !bytes.Equal(avatar, newAvatar) || mime != "image/jpeg" {
		t.Error("头像应保持上一次上传的内容")
	}
}

func TestDeleteAccountCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice", "alice@x.com")
	bob := registerUser(t, env, "bob", "bob@x.com")

	// alice 的三类作品
	graphic, err := env.works.Create(alice.ID, models.WorkGraphic, &dto.CreateWorkForm{About: "g"}, []byte{1}, "image/png")
	if err != nil {
		t.Fatalf("创建作品失败: %v", err)
	}
	if _, err := env.works.Create(alice.ID, models.WorkWrite, &dto.CreateWorkForm{Title: "T", Text: "B"}, nil, ""); err != nil {
		t.Fatalf("创建作品失败: %v", err)
	}
	if _, err := env.works.Create(alice.ID, models.WorkAudio, &dto.CreateWorkForm{About: "a"}, []byte{2}, "audio/wav"); err != nil {
		t.Fatalf("创建作品失败: %v", err)
	}

	// bob 的作品，alice 在上面留了评论
	bobWork, err := env.works.Create(bob.ID, models.WorkWrite, &dto.CreateWorkForm{Title: "BT", Text: "BB"}, nil, "")
	if err != nil {
		t.Fatalf("创建作品失败: %v", err)
	}
	if _, err := env.comments.Add(alice.ID, models.WorkWrite, bobWork.ID, "by alice"); err != nil {
		t.Fatalf("添加评论失败: %v", err)
	}
	// bob 在 alice 的作品上留的评论
	if _, err := env.comments.Add(bob.ID, models.WorkGraphic, graphic.ID, "by bob"); err != nil {
		t.Fatalf("添加评论失败: %v", err)
	}

	// alice 的活跃会话
	resp, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "alice@x.com", Password: testPassword})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	claims, err := env.jwt.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("验证Token失败: %v", err)
	}

	if err := env.profile.DeleteAccount(ctx, alice.ID); err != nil {
		t.Fatalf("注销账号失败: %v", err)
	}

	// 用户行已删除
	if _, err := env.profile.GetProfile(alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound, 实际: %v", err)
	}

	// 任何类型的作品列表都不再包含 alice 的作品
	for _, kind := range []models.WorkKind{models.WorkGraphic, models.WorkWrite, models.WorkAudio} {
		works, err := env.works.List(kind)
		if err != nil {
			t.Fatalf("查询作品失败: %v", err)
		}
		for _, w := range works {
			if w.AuthorID == alice.ID {
				t.Errorf("作品 %s/%d 应随账号删除", kind, w.ID)
			}
		}
	}

	// alice 发出的评论已删除
	comments, err := env.comments.List(models.WorkWrite, bobWork.ID)
	if err != nil {
		t.Fatalf("查询评论失败: %v", err)
	}
	for _, c := range comments {
		if c.AuthorID == alice.ID {
			t.Errorf("评论 %d 应随账号删除", c.ID)
		}
	}

	// 指向 alice 作品的评论也一并清理，不留孤儿行
	var orphanCount int64
	if err := env.db.Model(&models.Comment{}).Where("work_type = ? AND work_id = ?", models.WorkGraphic, graphic.ID).Count(&orphanCount).Error; err != nil {
		t.Fatalf("查询评论失败: %v", err)
	}
	if orphanCount != 0 {
		t.Errorf("指向已删除作品的评论应被清理, 剩余 %d 条", orphanCount)
	}

	// 会话全部终止
	if _, err := env.sessions.Get(ctx, claims.SessionID); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("期望会话已删除, 实际: %v", err)
	}

	// bob 的数据不受影响
	if _, err := env.profile.GetProfile(bob.ID); err != nil {
		t.Errorf("其他用户不应受影响: %v", err)
	}
	if _, err := env.works.Get(models.WorkWrite, bobWork.ID); err != nil {
		t.Errorf("其他用户的作品不应受影响: %v", err)
	}
}

func TestSearchUsers(t *testing.T) {
	env := newTestEnv(t)
	registerUser(t, env, "alice", "alice@x.com")
	registerUser(t, env, "alicia", "alicia@x.com")
	registerUser(t, env, "bob", "bob@x.com")

	t.Run("empty query returns all", func(t *testing.T) {
		users, err := env.profile.SearchUsers("")
		if err != nil {
			t.Fatalf("搜索失败: %v", err)
		}
		if len(users) != 3 {
			t.Errorf("期望 3 个用户, 实际 %d", len(users))
		}
	})

	t.Run("substring match", func(t *testing.T) {
		users, err := env.profile.SearchUsers("ali")
		if err != nil {
			t.Fatalf("搜索失败: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("期望 2 个用户, 实际 %d", len(users))
		}
	})

	t.Run("no match", func(t *testing.T) {
		users, err := env.profile.SearchUsers("xyz_no_match")
		if err != nil {
			t.Fatalf("搜索失败: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("期望空结果, 实际 %d", len(users))
		}
	})
}

func TestGetUserWorks(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice", "alice@x.com")

	if _, err := env.works.Create(alice.ID, models.WorkWrite, &dto.CreateWorkForm{Title: "T", Text: "B"}, nil, ""); err != nil {
		t.Fatalf("创建作品失败: %v", err)
	}
	if _, err := env.works.Create(alice.ID, models.WorkGraphic, &dto.CreateWorkForm{About: "g"}, []byte{1}, "image/png"); err != nil {
		t.Fatalf("创建作品失败: %v", err)
	}

	works, err := env.profile.GetUserWorks(alice.ID)
	if err != nil {
		t.Fatalf("查询用户作品失败: %v", err)
	}
	if works.Name != "alice" {
		t.Errorf("用户名不匹配: %s", works.Name)
	}
	if len(works.Writes) != 1 || len(works.Graphics) != 1 || len(works.Audios) != 0 {
		t.Errorf("作品分组不符合预期: %+v", works)
	}

	if _, err := env.profile.GetUserWorks(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound, 实际: %v", err)
	}
}

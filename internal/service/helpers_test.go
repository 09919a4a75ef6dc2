package service

import (
	"path/filepath"
	"testing"

	"artshare-go/internal/config"
	"artshare-go/internal/dto"
	"artshare-go/internal/models"
	"artshare-go/internal/repository"
	"artshare-go/internal/session"
	"artshare-go/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:             "test-secret",
			Algorithm:             "HS256",
			ExpireMinutes:         60,
			RememberExpireMinutes: 1440,
		},
	}
}

type testEnv struct {
	db       *gorm.DB
	sessions *session.MemoryStore
	jwt      *utils.JWTManager
	auth     *AuthService
	profile  *ProfileService
	works    *WorkService
	comments *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testConfig()
	db := setupTestDB(t)
	sessions := session.NewMemoryStore()
	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Algorithm)

	userRepo := repository.NewUserRepository(db)
	workRepo := repository.NewWorkRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &testEnv{
		db:       db,
		sessions: sessions,
		jwt:      jwtManager,
		auth:     NewAuthService(userRepo, sessions, jwtManager, cfg),
		profile:  NewProfileService(userRepo, workRepo, commentRepo, sessions),
		works:    NewWorkService(workRepo),
		comments: NewCommentService(commentRepo),
	}
}

const testPassword = "password123"

// registerUser 注册一个测试用户
func registerUser(t *testing.T, env *testEnv, name, email string) *models.User {
	t.Helper()

	user, err := env.auth.Register(&dto.RegisterForm{
		Name:            name,
		Email:           email,
		Password:        testPassword,
		PasswordConfirm: testPassword,
		About:           "test user",
	}, []byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	if err != nil {
		t.Fatalf("注册用户 %s 失败: %v", email, err)
	}
	return user
}

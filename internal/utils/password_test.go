package utils

import (
	"strings"
	"testing"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	if hash == "password123" {
		t.Error("密码不能以明文存储")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("应为bcrypt哈希: %s", hash)
	}

	if err := CheckPassword("password123", hash); err != nil {
		t.Errorf("正确密码应通过验证: %v", err)
	}
	if err := CheckPassword("wrong-password", hash); err == nil {
		t.Error("错误密码不应通过验证")
	}
}

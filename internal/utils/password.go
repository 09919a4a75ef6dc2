package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost 注册与改密时生成哈希的强度
const passwordHashCost = bcrypt.DefaultCost

// HashPassword 生成密码哈希，结果存入用户表的 password_hash 列
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 登录时比对明文密码与存储的哈希
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

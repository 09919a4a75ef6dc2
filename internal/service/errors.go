package service

import "errors"

// 服务层错误种类，handler 层据此映射HTTP状态码
var (
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = errors.New("该邮箱已被注册")
	// ErrPasswordMismatch 两次输入的密码不一致
	ErrPasswordMismatch = errors.New("两次输入的密码不一致")
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	// ErrAuthRequired 需要登录
	ErrAuthRequired = errors.New("需要登录")
	// ErrNotFound 目标不存在
	ErrNotFound = errors.New("目标不存在")
	// ErrForbidden 无权操作他人的资源
	ErrForbidden = errors.New("无权执行该操作")
	// ErrValidation 请求内容不完整或不合法
	ErrValidation = errors.New("请求内容不合法")
)

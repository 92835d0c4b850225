package util

import (
	"crypto/rand"
	"html"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher bcrypt 哈希，cost 可配置（测试里用 bcrypt.MinCost）
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check 密码不匹配或哈希格式错误都只返回 false
func (h *PasswordHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyHash 生成一个同等 cost 的随机哈希，用于用户不存在时消耗同样的校验时间
func (h *PasswordHasher) DummyHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return h.Hash(string(buf[:]))
}

// MaskUsername 日志中只保留前 3 个字符
func MaskUsername(username string) string {
	runes := []rune(username)
	if len(runes) <= 3 {
		return "***"
	}
	return string(runes[:3]) + "***"
}

// DisplayUsername 对外展示的用户名，始终保留前 3 个字符
func DisplayUsername(username string) string {
	runes := []rune(username)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes) + "***"
}

// EscapeText 输出前转义 HTML 特殊字符，存储值保持不变
func EscapeText(s string) string {
	return html.EscapeString(s)
}

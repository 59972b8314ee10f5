// Package history 将 REPL 输入保存到 SQLite 数据库
package history

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/zeebo/blake3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/soft_delete"
)

// Entry 一条历史记录
type Entry struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Source string // 提交的源码（可能多行）
	// 源码的 BLAKE3 摘要，用于去重
	Digest    string `gorm:"index:idx_digest"`
	CreatedAt int64
	/* 0 false 1 true */
	Deleted soft_delete.DeletedAt `gorm:"softDelete:flag;default:0"`
}

func (Entry) TableName() string {
	return "history"
}

// Store 历史记录存储
type Store struct {
	db    *gorm.DB
	limit int // 保留的最大条数，0 表示不限制
}

// DefaultPath 返回默认的历史数据库路径 ~/.fddl/history.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fddl", "history.db"), nil
}

// Open 打开（必要时创建）历史数据库
func Open(path string, limit int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}

	return &Store{db: db, limit: limit}, nil
}

// Digest 计算源码摘要
func Digest(source string) string {
	sum := blake3.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Append 追加一条记录；空白输入和与上一条相同的输入被忽略
func (s *Store) Append(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil
	}
	digest := Digest(source)

	var last []*Entry
	if err := s.db.Model(&Entry{}).Order("id desc").Limit(1).Find(&last).Error; err != nil {
		return err
	}
	if len(last) > 0 && last[0].Digest == digest {
		return nil
	}

	if err := s.db.Create(&Entry{Source: source, Digest: digest}).Error; err != nil {
		return err
	}
	return s.trim()
}

// trim 软删除超出上限的最旧记录
func (s *Store) trim() error {
	if s.limit <= 0 {
		return nil
	}

	var cnt int64
	if err := s.db.Model(&Entry{}).Count(&cnt).Error; err != nil {
		return err
	}
	excess := int(cnt) - s.limit
	if excess <= 0 {
		return nil
	}

	var ids []int64
	if err := s.db.Model(&Entry{}).Order("id asc").Limit(excess).Pluck("id", &ids).Error; err != nil {
		return err
	}
	return s.db.Delete(&Entry{}, ids).Error
}

// Recent 返回最近的 n 条记录，按时间先后排列；n <= 0 时返回全部
func (s *Store) Recent(n int) ([]*Entry, error) {
	var items []*Entry
	q := s.db.Model(&Entry{}).Order("id desc")
	if n > 0 {
		q = q.Limit(n)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}

	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}

// Clear 软删除全部记录
func (s *Store) Clear() error {
	return s.db.Where("1 = 1").Delete(&Entry{}).Error
}

// Close 关闭数据库
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

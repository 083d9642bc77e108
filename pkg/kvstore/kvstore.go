// Package kvstore 提供一个简单的键值存储抽象。
// 原实现把「班级固定日程模板」和「报告篮」存在浏览器 localStorage 里；
// 服务端化之后由 Redis 承载，核心逻辑只依赖本接口，便于脱离 Redis 测试。
package kvstore

import (
	"context"
	"sync"
)

// Store 键值存储接口
type Store interface {
	// Get 读取键值；键不存在时 ok 为 false，不算错误
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set 写入键值（无过期时间）
	Set(ctx context.Context, key, value string) error
	// Delete 删除键；键不存在时静默成功
	Delete(ctx context.Context, key string) error
}

// ── 内存实现（测试与无 Redis 部署时的降级方案） ──

// Memory 进程内键值存储
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory 创建内存键值存储
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"cpucatalog/internal/domain"
)

// Memory is an in-memory CPURepository used in tests and local development.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	cpus   map[int64]domain.CPU
}

func NewMemory() *Memory {
	return &Memory{nextID: 1, cpus: make(map[int64]domain.CPU)}
}

func (m *Memory) Save(_ context.Context, cpu domain.CPU) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cpu.ID = m.nextID
	m.nextID++
	m.cpus[cpu.ID] = cpu
	return cpu.ID, nil
}

func (m *Memory) FindByID(_ context.Context, id int64) (*domain.CPU, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cpu, ok := m.cpus[id]
	if !ok {
		return nil, nil
	}
	return &cpu, nil
}

func (m *Memory) FindAll(_ context.Context, limit, offset int) ([]domain.CPU, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *Memory) Search(_ context.Context, query string) ([]domain.CPU, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.CPU
	for _, cpu := range m.sorted() {
		haystack := strings.ToLower(strings.Join([]string{
			cpu.ModelName, cpu.Family, cpu.Model, cpu.Codename,
		}, "\x00"))
		if strings.Contains(haystack, q) {
			out = append(out, cpu)
		}
	}
	return out, nil
}

func (m *Memory) Update(_ context.Context, cpu domain.CPU) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cpus[cpu.ID]; ok {
		m.cpus[cpu.ID] = cpu
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.cpus, id)
	return nil
}

func (m *Memory) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cpus = make(map[int64]domain.CPU)
	return nil
}

func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.cpus), nil
}

func (m *Memory) Stats(_ context.Context) (domain.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := domain.Stats{TotalCPUs: len(m.cpus)}

	families := make(map[string]struct{})
	coreSum, coreCount := 0, 0
	for _, cpu := range m.cpus {
		if cpu.Family != "" {
			families[cpu.Family] = struct{}{}
		}
		if cpu.Cores != nil {
			coreSum += *cpu.Cores
			coreCount++
		}
	}
	stats.UniqueFamilies = len(families)
	if coreCount > 0 {
		avg := float64(coreSum) / float64(coreCount)
		stats.AverageCores = &avg
	}

	return stats, nil
}

func (m *Memory) FindUnclassified(_ context.Context) ([]domain.CPU, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.CPU
	for _, cpu := range m.sorted() {
		if cpu.Codename == "" && cpu.Model != "" && cpu.LaunchYear != nil {
			out = append(out, cpu)
		}
	}
	return out, nil
}

func (m *Memory) SetCodename(_ context.Context, id int64, codename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cpu, ok := m.cpus[id]; ok {
		cpu.Codename = codename
		m.cpus[id] = cpu
	}
	return nil
}

func (m *Memory) sorted() []domain.CPU {
	out := make([]domain.CPU, 0, len(m.cpus))
	for _, cpu := range m.cpus {
		out = append(out, cpu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

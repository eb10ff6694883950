package storage

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"

	"cpucatalog/internal/domain"
)

const cpuColumns = `id, model_name, family, model, codename, cores, threads,
	max_turbo_ghz, l3_cache_mb, tdp_watts, launch_year, max_memory_tb`

type Postgres struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	p := &Postgres{db: db}
	if err := p.migrate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Postgres) migrate() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS cpu_specs (
			id            BIGSERIAL PRIMARY KEY,
			model_name    TEXT NOT NULL,
			family        TEXT,
			model         TEXT,
			codename      TEXT,
			cores         INT,
			threads       INT,
			max_turbo_ghz DOUBLE PRECISION,
			l3_cache_mb   DOUBLE PRECISION,
			tdp_watts     INT,
			launch_year   INT,
			max_memory_tb DOUBLE PRECISION
		)
	`)
	return err
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) Save(ctx context.Context, cpu domain.CPU) (int64, error) {
	query := `
		INSERT INTO cpu_specs (model_name, family, model, codename, cores, threads,
			max_turbo_ghz, l3_cache_mb, tdp_watts, launch_year, max_memory_tb)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := p.db.QueryRowContext(ctx, query,
		cpu.ModelName,
		nullString(cpu.Family),
		nullString(cpu.Model),
		nullString(cpu.Codename),
		cpu.Cores,
		cpu.Threads,
		cpu.MaxTurboGHz,
		cpu.L3CacheMB,
		cpu.TDPWatts,
		cpu.LaunchYear,
		cpu.MaxMemoryTB,
	).Scan(&id)

	return id, err
}

func (p *Postgres) FindByID(ctx context.Context, id int64) (*domain.CPU, error) {
	query := `SELECT ` + cpuColumns + ` FROM cpu_specs WHERE id = $1`

	cpu, err := scanCPU(p.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return cpu, nil
}

func (p *Postgres) FindAll(ctx context.Context, limit, offset int) ([]domain.CPU, error) {
	query := `SELECT ` + cpuColumns + ` FROM cpu_specs ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := p.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCPUs(rows)
}

func (p *Postgres) Search(ctx context.Context, q string) ([]domain.CPU, error) {
	query := `
		SELECT ` + cpuColumns + ` FROM cpu_specs
		WHERE model_name ILIKE $1 OR family ILIKE $1 OR model ILIKE $1 OR codename ILIKE $1
		ORDER BY id
	`

	rows, err := p.db.QueryContext(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCPUs(rows)
}

func (p *Postgres) Update(ctx context.Context, cpu domain.CPU) error {
	query := `
		UPDATE cpu_specs
		SET model_name = $2, family = $3, model = $4, codename = $5, cores = $6,
			threads = $7, max_turbo_ghz = $8, l3_cache_mb = $9, tdp_watts = $10,
			launch_year = $11, max_memory_tb = $12
		WHERE id = $1
	`

	_, err := p.db.ExecContext(ctx, query,
		cpu.ID,
		cpu.ModelName,
		nullString(cpu.Family),
		nullString(cpu.Model),
		nullString(cpu.Codename),
		cpu.Cores,
		cpu.Threads,
		cpu.MaxTurboGHz,
		cpu.L3CacheMB,
		cpu.TDPWatts,
		cpu.LaunchYear,
		cpu.MaxMemoryTB,
	)

	return err
}

func (p *Postgres) Delete(ctx context.Context, id int64) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM cpu_specs WHERE id = $1`, id)
	return err
}

func (p *Postgres) DeleteAll(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM cpu_specs`)
	return err
}

func (p *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cpu_specs`).Scan(&count)
	return count, err
}

func (p *Postgres) Stats(ctx context.Context) (domain.Stats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(DISTINCT family) FILTER (WHERE family IS NOT NULL AND family <> ''),
			AVG(cores)
		FROM cpu_specs
	`

	var stats domain.Stats
	var avg sql.NullFloat64
	err := p.db.QueryRowContext(ctx, query).Scan(&stats.TotalCPUs, &stats.UniqueFamilies, &avg)
	if err != nil {
		return domain.Stats{}, err
	}

	if avg.Valid {
		stats.AverageCores = &avg.Float64
	}

	return stats, nil
}

func (p *Postgres) FindUnclassified(ctx context.Context) ([]domain.CPU, error) {
	query := `
		SELECT ` + cpuColumns + ` FROM cpu_specs
		WHERE (codename IS NULL OR codename = '')
			AND model IS NOT NULL AND model <> ''
			AND launch_year IS NOT NULL
		ORDER BY id
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCPUs(rows)
}

func (p *Postgres) SetCodename(ctx context.Context, id int64, codename string) error {
	_, err := p.db.ExecContext(ctx, `UPDATE cpu_specs SET codename = $2 WHERE id = $1`, id, codename)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCPU(row rowScanner) (*domain.CPU, error) {
	var cpu domain.CPU
	var family, model, codename sql.NullString

	err := row.Scan(
		&cpu.ID,
		&cpu.ModelName,
		&family,
		&model,
		&codename,
		&cpu.Cores,
		&cpu.Threads,
		&cpu.MaxTurboGHz,
		&cpu.L3CacheMB,
		&cpu.TDPWatts,
		&cpu.LaunchYear,
		&cpu.MaxMemoryTB,
	)
	if err != nil {
		return nil, err
	}

	cpu.Family = family.String
	cpu.Model = model.String
	cpu.Codename = codename.String

	return &cpu, nil
}

func collectCPUs(rows *sql.Rows) ([]domain.CPU, error) {
	var cpus []domain.CPU
	for rows.Next() {
		cpu, err := scanCPU(rows)
		if err != nil {
			return nil, err
		}
		cpus = append(cpus, *cpu)
	}
	return cpus, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/courtside/skillserver/gen/model"
	"github.com/courtside/skillserver/gen/table"
	"github.com/courtside/skillserver/internal/config"
	"github.com/courtside/skillserver/internal/domain"
	sqlite3 "github.com/courtside/skillserver/internal/migrate"
	"github.com/courtside/skillserver/internal/storage"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	queries
	conn *sql.DB
	log  *logrus.Entry
}

var _ storage.Storage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.Up(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		queries: queries{db: db},
		conn:    db,
		log:     log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func (s *Storage) Close() error {
	return s.conn.Close()
}

// WithTx runs fn inside one transaction. SQLite serializes writers and the
// pool is capped at a single connection, so concurrent confirmations cannot
// interleave between the re-read and the write.
func (s *Storage) WithTx(ctx context.Context, fn func(q storage.Queries) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&queries{db: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.WithError(rbErr).Error("rollback failed")
		}
		return err
	}
	return tx.Commit()
}

type queries struct {
	db qrm.DB
}

var _ storage.Queries = (*queries)(nil)

func noRows(err error) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return sql.ErrNoRows
	}
	return err
}

func (q *queries) AddPlayer(ctx context.Context, p domain.PlayerProfile) error {
	_, err := table.PlayerProfiles.
		INSERT(table.PlayerProfiles.AllColumns).
		MODEL(convertPlayerFromDomain(p)).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) GetPlayer(ctx context.Context, id uuid.UUID) (domain.PlayerProfile, error) {
	var dest model.PlayerProfiles
	err := table.PlayerProfiles.
		SELECT(table.PlayerProfiles.AllColumns).
		FROM(table.PlayerProfiles).
		WHERE(table.PlayerProfiles.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return domain.PlayerProfile{}, noRows(err)
	}
	return convertPlayerToDomain(dest)
}

func (q *queries) ListCountries(ctx context.Context) ([]string, error) {
	var dest []model.PlayerProfiles
	err := table.PlayerProfiles.
		SELECT(table.PlayerProfiles.Country).
		DISTINCT().
		FROM(table.PlayerProfiles).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return nil, err
	}
	countries := make([]string, 0, len(dest))
	for _, row := range dest {
		countries = append(countries, row.Country)
	}
	return countries, nil
}

func (q *queries) GetSportProfile(ctx context.Context, playerID uuid.UUID, sport domain.Sport) (domain.SportProfile, error) {
	var dest model.SportProfiles
	err := table.SportProfiles.
		SELECT(table.SportProfiles.AllColumns).
		FROM(table.SportProfiles).
		WHERE(table.SportProfiles.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(table.SportProfiles.Sport.EQ(sqlite.String(string(sport))))).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return domain.SportProfile{}, noRows(err)
	}
	return convertSportProfileToDomain(dest)
}

func (q *queries) CreateSportProfile(ctx context.Context, p domain.SportProfile) error {
	_, err := table.SportProfiles.
		INSERT(table.SportProfiles.AllColumns).
		MODEL(convertSportProfileFromDomain(p)).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) UpdateSportScores(ctx context.Context, playerID uuid.UUID, sport domain.Sport, composite, effective *float64, skillTier tier.Tier) error {
	upd := model.SportProfiles{
		CompositeScore: composite,
		EffectiveScore: effective,
		SkillTier:      string(skillTier),
	}
	_, err := table.SportProfiles.
		UPDATE(table.SportProfiles.CompositeScore, table.SportProfiles.EffectiveScore, table.SportProfiles.SkillTier).
		MODEL(upd).
		WHERE(table.SportProfiles.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(table.SportProfiles.Sport.EQ(sqlite.String(string(sport))))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) ApplyRating(ctx context.Context, playerID uuid.UUID, sport domain.Sport, eloDelta int, won bool) error {
	t := table.SportProfiles
	assignments := []interface{}{
		t.MatchElo.SET(t.MatchElo.ADD(sqlite.Int(int64(eloDelta)))),
		t.MatchesPlayed.SET(t.MatchesPlayed.ADD(sqlite.Int(1))),
	}
	if won {
		assignments = append(assignments, t.MatchesWon.SET(t.MatchesWon.ADD(sqlite.Int(1))))
	}
	_, err := t.
		UPDATE().
		SET(assignments[0], assignments[1:]...).
		WHERE(t.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(t.Sport.EQ(sqlite.String(string(sport))))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) ListRanked(ctx context.Context, sport domain.Sport, country string) ([]domain.SportProfile, error) {
	t := table.SportProfiles
	cond := t.Sport.EQ(sqlite.String(string(sport))).
		AND(t.EffectiveScore.IS_NOT_NULL()).
		AND(t.SkillTier.NOT_EQ(sqlite.String(string(tier.Unranked))))
	var from sqlite.ReadableTable = t
	if country != "" {
		from = t.INNER_JOIN(table.PlayerProfiles, table.PlayerProfiles.ID.EQ(t.PlayerID))
		cond = cond.AND(table.PlayerProfiles.Country.EQ(sqlite.String(country)))
	}
	var dest []model.SportProfiles
	err := t.
		SELECT(t.AllColumns).
		FROM(from).
		WHERE(cond).
		ORDER_BY(t.EffectiveScore.DESC(), t.PlayerID.ASC()).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.SportProfile, 0, len(dest))
	for _, row := range dest {
		p, err := convertSportProfileToDomain(row)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (q *queries) SetGlobalRank(ctx context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error {
	t := table.SportProfiles
	_, err := t.
		UPDATE(t.GlobalRank).
		SET(sqlite.Int(int64(rank))).
		WHERE(t.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(t.Sport.EQ(sqlite.String(string(sport))))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) SetCountryRank(ctx context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error {
	t := table.SportProfiles
	_, err := t.
		UPDATE(t.CountryRank).
		SET(sqlite.Int(int64(rank))).
		WHERE(t.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(t.Sport.EQ(sqlite.String(string(sport))))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) GetTechniqueScore(ctx context.Context, playerID uuid.UUID, sport domain.Sport, technique string) (domain.TechniqueScore, error) {
	t := table.TechniqueScores
	var dest model.TechniqueScores
	err := t.
		SELECT(t.AllColumns).
		FROM(t).
		WHERE(t.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(t.Sport.EQ(sqlite.String(string(sport)))).
			AND(t.Technique.EQ(sqlite.String(technique)))).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return domain.TechniqueScore{}, noRows(err)
	}
	return convertTechniqueScoreToDomain(dest)
}

func (q *queries) CreateTechniqueScore(ctx context.Context, ts domain.TechniqueScore) error {
	t := table.TechniqueScores
	_, err := t.
		INSERT(t.AllColumns).
		MODEL(convertTechniqueScoreFromDomain(ts)).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) UpdateTechniqueScore(ctx context.Context, ts domain.TechniqueScore) error {
	t := table.TechniqueScores
	_, err := t.
		UPDATE(t.BestScore, t.LastAnalyzedAt).
		MODEL(convertTechniqueScoreFromDomain(ts)).
		WHERE(t.PlayerID.EQ(sqlite.UUID(ts.PlayerID)).
			AND(t.Sport.EQ(sqlite.String(string(ts.Sport)))).
			AND(t.Technique.EQ(sqlite.String(ts.Technique)))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) ListTechniqueScores(ctx context.Context, playerID uuid.UUID, sport domain.Sport) ([]domain.TechniqueScore, error) {
	t := table.TechniqueScores
	var dest []model.TechniqueScores
	err := t.
		SELECT(t.AllColumns).
		FROM(t).
		WHERE(t.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(t.Sport.EQ(sqlite.String(string(sport))))).
		ORDER_BY(t.Technique.ASC()).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return nil, err
	}
	scores := make([]domain.TechniqueScore, 0, len(dest))
	for _, row := range dest {
		ts, err := convertTechniqueScoreToDomain(row)
		if err != nil {
			return nil, err
		}
		scores = append(scores, ts)
	}
	return scores, nil
}

func (q *queries) CreateMatch(ctx context.Context, m domain.Match) error {
	_, err := table.Matches.
		INSERT(table.Matches.AllColumns).
		MODEL(convertMatchFromDomain(m)).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) GetMatch(ctx context.Context, id uuid.UUID) (domain.Match, error) {
	var dest model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return domain.Match{}, noRows(err)
	}
	return convertMatchToDomain(dest)
}

func (q *queries) UpdateMatch(ctx context.Context, m domain.Match) error {
	t := table.Matches
	_, err := t.
		UPDATE(t.MutableColumns).
		MODEL(convertMatchFromDomain(m)).
		WHERE(t.ID.EQ(sqlite.UUID(m.ID))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) CreateChallenge(ctx context.Context, c domain.Challenge) error {
	_, err := table.Challenges.
		INSERT(table.Challenges.AllColumns).
		MODEL(model.Challenges{
			ID:        c.ID.String(),
			Status:    string(c.Status),
			CreatedAt: c.CreatedAt,
		}).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) CompleteChallenge(ctx context.Context, id uuid.UUID) error {
	t := table.Challenges
	_, err := t.
		UPDATE(t.Status).
		SET(sqlite.String(string(domain.ChallengeCompleted))).
		WHERE(t.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) GetSnapshot(ctx context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error) {
	t := table.RankingSnapshots
	var dest model.RankingSnapshots
	err := t.
		SELECT(t.AllColumns).
		FROM(t).
		WHERE(t.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(t.Sport.EQ(sqlite.String(string(sport)))).
			AND(t.Period.EQ(sqlite.String(period))).
			AND(t.Scope.EQ(sqlite.String(scope)))).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return domain.RankingSnapshot{}, noRows(err)
	}
	return convertSnapshotToDomain(dest)
}

func (q *queries) LatestSnapshotBefore(ctx context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error) {
	t := table.RankingSnapshots
	var dest model.RankingSnapshots
	err := t.
		SELECT(t.AllColumns).
		FROM(t).
		WHERE(t.PlayerID.EQ(sqlite.UUID(playerID)).
			AND(t.Sport.EQ(sqlite.String(string(sport)))).
			AND(t.Period.LT(sqlite.String(period))).
			AND(t.Scope.EQ(sqlite.String(scope)))).
		ORDER_BY(t.Period.DESC()).
		LIMIT(1).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return domain.RankingSnapshot{}, noRows(err)
	}
	return convertSnapshotToDomain(dest)
}

func (q *queries) CreateSnapshot(ctx context.Context, s domain.RankingSnapshot) error {
	_, err := table.RankingSnapshots.
		INSERT(table.RankingSnapshots.AllColumns).
		MODEL(convertSnapshotFromDomain(s)).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) UpdateSnapshotRank(ctx context.Context, s domain.RankingSnapshot) error {
	t := table.RankingSnapshots
	_, err := t.
		UPDATE(t.Rank, t.ComputedAt).
		MODEL(convertSnapshotFromDomain(s)).
		WHERE(t.PlayerID.EQ(sqlite.UUID(s.PlayerID)).
			AND(t.Sport.EQ(sqlite.String(string(s.Sport)))).
			AND(t.Period.EQ(sqlite.String(s.Period))).
			AND(t.Scope.EQ(sqlite.String(s.Scope)))).
		ExecContext(ctx, q.db)
	return err
}

func (q *queries) ListSnapshots(ctx context.Context, sport domain.Sport, period, scope string) ([]domain.RankingSnapshot, error) {
	t := table.RankingSnapshots
	var dest []model.RankingSnapshots
	err := t.
		SELECT(t.AllColumns).
		FROM(t).
		WHERE(t.Sport.EQ(sqlite.String(string(sport))).
			AND(t.Period.EQ(sqlite.String(period))).
			AND(t.Scope.EQ(sqlite.String(scope)))).
		ORDER_BY(t.Rank.ASC()).
		QueryContext(ctx, q.db, &dest)
	if err != nil {
		return nil, err
	}
	snapshots := make([]domain.RankingSnapshot, 0, len(dest))
	for _, row := range dest {
		s, err := convertSnapshotToDomain(row)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

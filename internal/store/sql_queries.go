package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createMission = `INSERT INTO missions (name, description, created_by)
    VALUES ($1, $2, $3)
    RETURNING mission_id, name, description, created_by, created_at;`

	findMissionForOwner = `SELECT mission_id, name, description, created_by, created_at
    FROM missions
    WHERE mission_id = $1 AND created_by = $2;`

	// missionOwnerLocked re-reads the mission owner inside the paired-write
	// transaction. FOR SHARE keeps the mission row from being deleted or
	// reassigned between the ownership check and the inserts.
	missionOwnerLocked = `SELECT created_by
    FROM missions
    WHERE mission_id = $1
    FOR SHARE;`

	insertProgress = `INSERT INTO mission_progress (
			user_id,
			mission_id,
			status,
			score,
			completed_at,
			notes,
			evidence_path,
			evidence_note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING progress_id, user_id, mission_id, status, score, completed_at, notes, evidence_path, evidence_note, created_at;`

	insertDiaryEntry = `INSERT INTO user_diary (user_id, summary)
    VALUES ($1, $2);`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildMissionsByOwnerQuery lists all missions owned by the given user,
// oldest first.
func buildMissionsByOwnerQuery(userID int64) (string, []any, error) {
	return psql.
		Select("mission_id", "name", "description", "created_by", "created_at").
		From("missions").
		Where(sq.Eq{"created_by": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

// buildProgressByMissionQuery lists all progress events recorded against the
// given mission, oldest first.
func buildProgressByMissionQuery(missionID int64) (string, []any, error) {
	return psql.
		Select("progress_id", "user_id", "mission_id", "status", "score",
			"completed_at", "notes", "evidence_path", "evidence_note", "created_at").
		From("mission_progress").
		Where(sq.Eq{"mission_id": missionID}).
		OrderBy("created_at ASC").
		ToSql()
}

// buildDiaryByUserQuery lists all diary entries belonging to the given user,
// oldest first.
func buildDiaryByUserQuery(userID int64) (string, []any, error) {
	return psql.
		Select("diary_id", "user_id", "summary", "created_at").
		From("user_diary").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

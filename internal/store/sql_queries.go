package store

import (
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

var (
	classColumns = []string{"id", "name", "age_group", "description", "is_archived"}
	userColumns  = []string{"id", "username", "email", "password_hash", "first_name", "last_name", "role_id", "created_at"}
)

// existenceTarget describes where an entity kind lives.
type existenceTarget struct {
	table   string
	column  string
	numeric bool
	filter  sq.Sqlizer
}

var existenceTargets = map[validators.EntityKind]existenceTarget{
	validators.KindClass:        {table: "classes", column: "id", numeric: true, filter: sq.Eq{"is_archived": false}},
	validators.KindClassRole:    {table: "class_roles", column: "id", numeric: true},
	validators.KindReport:       {table: "reports", column: "id", numeric: true},
	validators.KindUserEmail:    {table: "users", column: "email"},
	validators.KindUserUsername: {table: "users", column: "username"},
}

// normalizeKey converts a raw request value to the column type of target.
// ok is false for values that cannot match any row (e.g. "abc" as an id).
func (t existenceTarget) normalizeKey(key any) (any, bool) {
	if t.numeric {
		id, ok := validators.ToInt64(key)
		return id, ok && id > 0
	}

	s := strings.TrimSpace(fmt.Sprint(key))
	return s, s != ""
}

func (db *DB) buildExistsQuery(target existenceTarget, key any) (string, []any, error) {
	query := db.builder.
		Select("1").
		From(target.table).
		Where(sq.Eq{target.column: key}).
		Limit(1)

	if target.filter != nil {
		query = query.Where(target.filter)
	}

	return query.ToSql()
}

func (db *DB) buildInsertClassQuery(class models.Class) (string, []any, error) {
	return db.builder.
		Insert("classes").
		Columns("name", "age_group", "description").
		Values(class.Name, class.AgeGroup, class.Description).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildFindClassByIDQuery(id int64) (string, []any, error) {
	return db.builder.
		Select(classColumns...).
		From("classes").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildUpdateClassQuery(class models.Class) (string, []any, error) {
	return db.builder.
		Update("classes").
		Set("name", class.Name).
		Set("age_group", class.AgeGroup).
		Set("description", class.Description).
		Where(sq.Eq{"id": class.ID, "is_archived": false}).
		ToSql()
}

func (db *DB) buildArchiveClassQuery(id int64) (string, []any, error) {
	return db.builder.
		Update("classes").
		Set("is_archived", true).
		Where(sq.Eq{"id": id, "is_archived": false}).
		ToSql()
}

func (db *DB) buildCountClassesQuery() (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From("classes").
		Where(sq.Eq{"is_archived": false}).
		ToSql()
}

func (db *DB) buildFindAllClassesQuery() (string, []any, error) {
	return db.builder.
		Select(classColumns...).
		From("classes").
		Where(sq.Eq{"is_archived": false}).
		OrderBy("id").
		ToSql()
}

func (db *DB) buildInsertClassRoleQuery(role models.ClassRole) (string, []any, error) {
	return db.builder.
		Insert("class_roles").
		Columns("name", "payment_per_hour").
		Values(role.Name, role.PaymentPerHour).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildInsertReportEntityQuery(entity models.ReportEntity) (string, []any, error) {
	reportID := sql.NullInt64{Int64: entity.ReportID, Valid: entity.ReportID > 0}

	return db.builder.
		Insert("report_entities").
		Columns("report_id", "user_id", "class_id", "class_role_id", "date", "hours_spend").
		Values(reportID, entity.UserID, entity.ClassID, entity.ClassRoleID, entity.Date, entity.HoursSpend).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert("users").
		Columns("username", "email", "password_hash", "first_name", "last_name", "role_id").
		Values(user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.RoleID).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func (db *DB) buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-api/models"
)

var userColumns = []string{"id", "name", "age"}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Age).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

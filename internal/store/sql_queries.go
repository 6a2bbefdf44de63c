package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	usersTable    = "users"
	contactsTable = "contacts"
)

var (
	userColumns    = []string{"username", "name", "password", "token", "created_at"}
	contactColumns = []string{"id", "username", "first_name", "last_name", "email", "phone", "created_at"}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into a case-folded LIKE pattern matching any value
// that contains s literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func containsExpr(column, value string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") LIKE ? ESCAPE '\\'", containsPattern(value))
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "name", "password", "created_at").
		Values(user.Username, user.Name, user.Password, user.CreatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	changes := make(map[string]any, 2)
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Password != nil {
		changes["password"] = *update.Password
	}

	return b.Update(usersTable).
		SetMap(changes).
		Where(sq.Eq{"username": update.Username}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildSetTokenQuery(b sq.StatementBuilderType, username string, token *string) (string, []any, error) {
	var value any
	if token != nil {
		value = *token
	}

	return b.Update(usersTable).
		Set("token", value).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// ── contacts ──────────────────────────────────────────────────────────────────

func buildCreateContactQuery(b sq.StatementBuilderType, c models.Contact) (string, []any, error) {
	return b.Insert(contactsTable).
		Columns(contactColumns...).
		Values(c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedAt).
		ToSql()
}

func buildFindContactQuery(b sq.StatementBuilderType, username, id string) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": id, "username": username}).
		ToSql()
}

func buildUpdateContactQuery(b sq.StatementBuilderType, update models.ContactUpdate) (string, []any, error) {
	changes := make(map[string]any, 4)
	if update.FirstName != nil {
		changes["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		changes["last_name"] = *update.LastName
	}
	if update.Email != nil {
		changes["email"] = *update.Email
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}

	return b.Update(contactsTable).
		SetMap(changes).
		Where(sq.Eq{"id": update.ID, "username": update.Username}).
		Suffix("RETURNING " + strings.Join(contactColumns, ", ")).
		ToSql()
}

func buildDeleteContactQuery(b sq.StatementBuilderType, username, id string) (string, []any, error) {
	return b.Delete(contactsTable).
		Where(sq.Eq{"id": id, "username": username}).
		ToSql()
}

// contactFilterPredicate always restricts by owner; the optional criteria
// are ANDed on top of it.
func contactFilterPredicate(filter models.ContactFilter) sq.And {
	predicate := sq.And{sq.Eq{"username": filter.Username}}

	if filter.Name != nil {
		predicate = append(predicate, sq.Or{
			containsExpr("first_name", *filter.Name),
			containsExpr("last_name", *filter.Name),
		})
	}
	if filter.Email != nil {
		predicate = append(predicate, containsExpr("email", *filter.Email))
	}
	if filter.Phone != nil {
		predicate = append(predicate, containsExpr("phone", *filter.Phone))
	}

	return predicate
}

func buildSearchContactsQuery(b sq.StatementBuilderType, filter models.ContactFilter) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(contactFilterPredicate(filter)).
		OrderBy("created_at", "id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
}

func buildCountContactsQuery(b sq.StatementBuilderType, filter models.ContactFilter) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(contactsTable).
		Where(contactFilterPredicate(filter)).
		ToSql()
}

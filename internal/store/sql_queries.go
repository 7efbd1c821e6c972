package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/idea-vault/models"
)

const (
	createUser = `INSERT INTO users (email, password, first_name, last_name, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, first_name, last_name, role, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password, first_name, last_name, role, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, first_name, last_name, role, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createIdea = `INSERT INTO ideas (title, description, problem, solution, target_market,
        unique_value_proposition, business_model, competitors, status, owner_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING idea_id, title, description, problem, solution, target_market,
        unique_value_proposition, business_model, competitors, status, owner_id, created_at, updated_at;`

	findIdeaByID = `SELECT i.idea_id, i.title, i.description, i.problem, i.solution, i.target_market,
        i.unique_value_proposition, i.business_model, i.competitors, i.status, i.owner_id,
        i.created_at, i.updated_at, u.first_name, u.last_name, u.email
    FROM ideas i
    JOIN users u ON u.user_id = i.owner_id
    WHERE i.idea_id = $1;`

	updateIdea = `UPDATE ideas
    SET title = $1, description = $2, problem = $3, solution = $4, target_market = $5,
        unique_value_proposition = $6, business_model = $7, competitors = $8, status = $9,
        updated_at = NOW()
    WHERE idea_id = $10
    RETURNING idea_id, title, description, problem, solution, target_market,
        unique_value_proposition, business_model, competitors, status, owner_id, created_at, updated_at;`

	deleteIdea = `DELETE FROM ideas
    WHERE idea_id = $1;`
)

// ideaColumns is the canonical column order of the RETURNING clauses;
// scanIdea relies on it.
var ideaColumns = []string{
	"idea_id",
	"title",
	"description",
	"problem",
	"solution",
	"target_market",
	"unique_value_proposition",
	"business_model",
	"competitors",
	"status",
	"owner_id",
	"created_at",
	"updated_at",
}

// ideaListColumns extends [ideaColumns] with the joined owner fields that
// every read path embeds. Qualified because both tables carry created_at
// and updated_at.
var ideaListColumns = []string{
	"i.idea_id",
	"i.title",
	"i.description",
	"i.problem",
	"i.solution",
	"i.target_market",
	"i.unique_value_proposition",
	"i.business_model",
	"i.competitors",
	"i.status",
	"i.owner_id",
	"i.created_at",
	"i.updated_at",
	"u.first_name",
	"u.last_name",
	"u.email",
}

// likeEscaper neutralises LIKE metacharacters so user-entered search terms
// match literally instead of acting as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ideaFilterConditions translates an [models.IdeaFilter] into squirrel
// predicates shared by the listing and counting queries. Owner scoping is
// unconditional: cross-user listing does not exist.
func ideaFilterConditions(builder sq.SelectBuilder, filter models.IdeaFilter) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"i.owner_id": filter.OwnerID})

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"i.status": filter.Status})
	}

	if filter.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", likeEscaper.Replace(filter.Search))
		builder = builder.Where(sq.Or{
			sq.ILike{"i.title": pattern},
			sq.ILike{"i.description": pattern},
		})
	}

	return builder
}

// buildSelectIdeasQuery builds the paged listing query for the given filter,
// owner fields joined in, ordered newest-created first.
func buildSelectIdeasQuery(filter models.IdeaFilter) (string, []any, error) {
	builder := sq.Select(ideaListColumns...).
		From("ideas i").
		Join("users u ON u.user_id = i.owner_id").
		PlaceholderFormat(sq.Dollar)

	builder = ideaFilterConditions(builder, filter)

	return builder.
		OrderBy("i.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

// buildCountIdeasQuery builds the total-count query matching the same
// conditions as [buildSelectIdeasQuery], without pagination or the join.
func buildCountIdeasQuery(filter models.IdeaFilter) (string, []any, error) {
	builder := sq.Select("COUNT(*)").
		From("ideas i").
		PlaceholderFormat(sq.Dollar)

	builder = ideaFilterConditions(builder, filter)

	return builder.ToSql()
}

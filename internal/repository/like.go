package repository

import "strings"

// likeEscape is declared in every LIKE clause so user input containing
// % or _ is matched literally on both postgres and mysql.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// containsPattern returns a lower-cased LIKE pattern matching query anywhere in a column
func containsPattern(query string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(query)) + "%"
}

// lowerLike builds "LOWER(col) LIKE ? ESCAPE '!'"
func lowerLike(column string) string {
	return "LOWER(" + column + ") LIKE ? ESCAPE '" + likeEscape + "'"
}

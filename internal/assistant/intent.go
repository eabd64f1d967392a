package assistant

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of an operator query.  Classification is
// deterministic pattern matching, never probabilistic.
type Intent int

const (
	// IntentGeneral is the fallback when no statistics pattern matches.
	IntentGeneral Intent = iota
	// IntentUserRoleStats asks for user or per-role population counts.
	IntentUserRoleStats
	// IntentInventoryStats asks for inventory item or stock totals.
	IntentInventoryStats
	// IntentPersonalData asks for information about a specific person and
	// must be refused.
	IntentPersonalData
)

func (i Intent) String() string {
	switch i {
	case IntentUserRoleStats:
		return "user_role_stats"
	case IntentInventoryStats:
		return "inventory_stats"
	case IntentPersonalData:
		return "personal_data"
	default:
		return "general"
	}
}

// intentRule binds an intent to the patterns that trigger it.  Every
// pattern in both slices must match for the rule to fire: patterns run
// against the lower-cased query, cased against the original casing (used to
// demand a proper-name token, which lower-casing would erase).
type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
	cased    []*regexp.Regexp
}

// intentRules is evaluated top to bottom; the first matching rule wins.
// Vocabulary is Spanish-first with English synonyms, matching the original
// deployment's operator base.
var intentRules = []intentRule{
	{
		// A counting quantifier followed, within the same phrase, by a
		// role or population noun.
		intent: IntentUserRoleStats,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:cu[aá]nt[oa]s?|n[uú]mero de|cantidad de|total de|conteo de|how many|number of|count of|total of)[^.?!]*(?:\bpacientes?\b|\bpatients?\b|\busuari[oa]s?\b|\busers?\b|\bdoctor(?:es|s)?\b|\bm[eé]dic[oa]s?\b|farmac[eé]utic[oa]s?|\bpharmacists?\b|administrador(?:es)?|\badministrators?\b|\badmins?\b|personas registradas|registered people|\broles\b)`),
		},
	},
	{
		// Stock vocabulary combined with a totalling or counting token,
		// in either order.
		intent: IntentInventoryStats,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:stock|inventario|inventory|unidades|units|medicamentos?|medicinas?|medicines?)\b`),
			regexp.MustCompile(`(?:\btotal(?:es)?\b|\bsumar?\b|\bsum\b|cu[aá]nt[oa]s?|how many|\bactual\b|\bcurrent\b)`),
		},
	},
	{
		// Explicit personal-data vocabulary is refused on its own.
		intent: IntentPersonalData,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:datos personales|personal (?:data|information))`),
		},
	},
	{
		// Lookup phrasings ("información sobre…", "correo de…") only count
		// as personal-data requests when aimed at a specific named
		// individual.  The cased pattern demands a capitalized token after
		// the preposition, optionally past an article or a person noun, so
		// "información sobre el paracetamol" stays general.
		intent: IntentPersonalData,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:informaci[oó]n (?:personal )?(?:de|sobre|acerca de)\b|information about|correo (?:electr[oó]nico )?de\b|email (?:address )?(?:de|of|for)\b|tel[eé]fono de\b)`),
		},
		cased: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:[Dd]e|[Ss]obre|[Aa]cerca de|[Aa]bout|[Oo]f|[Ff]or)\s+(?:(?:el|la|los|las|del)\s+)?(?:(?:paciente|doctora?|usuari[oa]|se[ñn]ora?|farmac[eé]utic[oa])\s+)?\p{Lu}\p{L}+`),
		},
	},
}

// ClassifyIntent matches the query against the priority-ordered rule table.
// The same string always yields the same intent; when several families could
// match, the first listed family wins.
func ClassifyIntent(query string) Intent {
	raw := strings.TrimSpace(query)
	q := strings.ToLower(raw)
	for _, r := range intentRules {
		matched := true
		for _, p := range r.patterns {
			if !p.MatchString(q) {
				matched = false
				break
			}
		}
		for _, p := range r.cased {
			if !matched {
				break
			}
			if !p.MatchString(raw) {
				matched = false
			}
		}
		if matched {
			return r.intent
		}
	}
	return IntentGeneral
}

// NeedsSnapshot reports whether answering this intent requires fresh
// aggregate counts from the database.
func (i Intent) NeedsSnapshot() bool {
	return i == IntentUserRoleStats || i == IntentInventoryStats
}

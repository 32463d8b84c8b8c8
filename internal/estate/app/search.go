package app

import (
	"strings"

	"estatehub/internal/estate/domain/entities"
)

// propertyPredicate - элементарный фильтр поиска; итоговый фильтр
// является конъюнкцией всех элементарных.
type propertyPredicate func(*entities.Property) bool

func matchAll(*entities.Property) bool  { return true }
func matchNone(*entities.Property) bool { return false }

// buildPredicates переводит критерии поиска в список фильтров.
// Не заданный критерий пропускает все объявления; заданный, но
// нераспознанный перечисляемый критерий не пропускает ни одного.
func buildPredicates(criteria entities.SearchCriteria) []propertyPredicate {
	predicates := make([]propertyPredicate, 0)

	if criteria.PropertyType != "" {
		if parsed, err := entities.ParsePropertyType(criteria.PropertyType); err == nil {
			predicates = append(predicates, func(p *entities.Property) bool {
				return p.PropertyType == parsed
			})
		} else {
			predicates = append(predicates, matchNone)
		}
	}

	if criteria.Status != "" {
		if parsed, err := entities.ParsePropertyStatus(criteria.Status); err == nil {
			predicates = append(predicates, func(p *entities.Property) bool {
				return p.Status == parsed
			})
		} else {
			predicates = append(predicates, matchNone)
		}
	}

	if criteria.HeatingType != "" {
		if parsed, err := entities.ParseHeatingType(criteria.HeatingType); err == nil {
			predicates = append(predicates, func(p *entities.Property) bool {
				return p.HeatingType == parsed
			})
		} else {
			predicates = append(predicates, matchNone)
		}
	}

	if criteria.Address != "" {
		needle := strings.ToLower(criteria.Address)
		predicates = append(predicates, func(p *entities.Property) bool {
			return strings.Contains(strings.ToLower(p.Address), needle)
		})
	}

	if criteria.NumberOfRooms != "" {
		predicates = append(predicates, func(p *entities.Property) bool {
			return p.NumberOfRooms == criteria.NumberOfRooms
		})
	}

	if criteria.Floor != nil {
		floor := *criteria.Floor
		predicates = append(predicates, func(p *entities.Property) bool {
			return p.Floor == floor
		})
	}

	if criteria.MinPrice != nil {
		minPrice := *criteria.MinPrice
		predicates = append(predicates, func(p *entities.Property) bool {
			return p.Price >= minPrice
		})
	}

	if criteria.MaxPrice != nil {
		maxPrice := *criteria.MaxPrice
		predicates = append(predicates, func(p *entities.Property) bool {
			return p.Price <= maxPrice
		})
	}

	if criteria.MinArea != nil {
		minArea := *criteria.MinArea
		predicates = append(predicates, func(p *entities.Property) bool {
			return p.Area >= minArea
		})
	}

	if criteria.MaxArea != nil {
		maxArea := *criteria.MaxArea
		predicates = append(predicates, func(p *entities.Property) bool {
			return p.Area <= maxArea
		})
	}

	if len(predicates) == 0 {
		predicates = append(predicates, matchAll)
	}

	return predicates
}

func matches(property *entities.Property, predicates []propertyPredicate) bool {
	for _, predicate := range predicates {
		if !predicate(property) {
			return false
		}
	}
	return true
}

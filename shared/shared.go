package shared

import (
	"strings"

	"stayhub/shared/dto"
)

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func FilterByID(id int, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Filter{
			{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func FilterByContains(value, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Filter{
			{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorContains,
				Table:    table,
			},
		},
	}
}

package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq = "eq"
	// FilterOperatorContains matches a case-sensitive substring anywhere in
	// the column value.
	FilterOperatorContains = "contains"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq contains"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorContains:
		args[argName] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("%s LIKE :%s", column, argName), args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []Filter
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		where, arg := filter.GetWhereClause()
		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	joined := strings.Join(whereClause, fmt.Sprintf(" %s ", operator))

	return "WHERE " + joined, args
}

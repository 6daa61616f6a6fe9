package syntax

// Rule tags a syntax node.
//
// When adding rules, add them at the END of the enum so existing numbers
// stay stable.
type Rule uint32

const (
	RuleProgram Rule = iota
	RuleEOI

	// Expressions
	RuleExp
	RuleAssignmentExp
	RuleUnaryExp
	RuleBinaryExp
	RuleBinaryOp
	RuleBracketExp
	RuleId
	RuleGlobalId // identifier in callee position: f(...)
	RuleFnCall
	RuleArg
	RuleSkip // omitted argument: f(1, , 3)

	// Functions and control flow
	RuleFn
	RuleParams
	RuleStatements
	RuleIfExp
	RuleWhileExp
	RuleConditionExp
	RuleTryExp
	RuleReturnExp
	RuleRaiseExp

	// Collection literals
	RuleSeries
	RuleUnknown // unclassified series element, possibly empty
	RuleDataframe
	RuleMatrix
	RuleList
	RuleDict
	RuleKeyValueExp
	RuleKeys
	RuleValues
	RuleSeriesExp
	RuleRenameSeriesExp
	RuleSeriesName

	// Queries
	RuleSqlExp
	RuleFromExp
	RuleFilterExp
	RuleGroupExp
	RuleSelectOp
	RuleUpdateOp
	RuleDeleteOp
	RuleSortOp
	RuleSortName
	RuleTakeOp
	RuleUnarySqlExp
	RuleBinarySqlExp
	RuleBracketSqlExp

	// Scalars
	RuleBoolean
	RuleInteger
	RuleDecimal
	RuleDate
	RuleTime
	RuleDatetime
	RuleTimestamp
	RuleDuration
	RuleEnum // symbol
	RuleString
	RuleNone

	RuleSyms // `a`b`c
)

var ruleNames = [...]string{
	RuleProgram:         "Program",
	RuleEOI:             "EOI",
	RuleExp:             "Exp",
	RuleAssignmentExp:   "AssignmentExp",
	RuleUnaryExp:        "UnaryExp",
	RuleBinaryExp:       "BinaryExp",
	RuleBinaryOp:        "BinaryOp",
	RuleBracketExp:      "BracketExp",
	RuleId:              "Id",
	RuleGlobalId:        "GlobalId",
	RuleFnCall:          "FnCall",
	RuleArg:             "Arg",
	RuleSkip:            "Skip",
	RuleFn:              "Fn",
	RuleParams:          "Params",
	RuleStatements:      "Statements",
	RuleIfExp:           "IfExp",
	RuleWhileExp:        "WhileExp",
	RuleConditionExp:    "ConditionExp",
	RuleTryExp:          "TryExp",
	RuleReturnExp:       "ReturnExp",
	RuleRaiseExp:        "RaiseExp",
	RuleSeries:          "Series",
	RuleUnknown:         "Unknown",
	RuleDataframe:       "Dataframe",
	RuleMatrix:          "Matrix",
	RuleList:            "List",
	RuleDict:            "Dict",
	RuleKeyValueExp:     "KeyValueExp",
	RuleKeys:            "Keys",
	RuleValues:          "Values",
	RuleSeriesExp:       "SeriesExp",
	RuleRenameSeriesExp: "RenameSeriesExp",
	RuleSeriesName:      "SeriesName",
	RuleSqlExp:          "SqlExp",
	RuleFromExp:         "FromExp",
	RuleFilterExp:       "FilterExp",
	RuleGroupExp:        "GroupExp",
	RuleSelectOp:        "SelectOp",
	RuleUpdateOp:        "UpdateOp",
	RuleDeleteOp:        "DeleteOp",
	RuleSortOp:          "SortOp",
	RuleSortName:        "SortName",
	RuleTakeOp:          "TakeOp",
	RuleUnarySqlExp:     "UnarySqlExp",
	RuleBinarySqlExp:    "BinarySqlExp",
	RuleBracketSqlExp:   "BracketSqlExp",
	RuleBoolean:         "Boolean",
	RuleInteger:         "Integer",
	RuleDecimal:         "Decimal",
	RuleDate:            "Date",
	RuleTime:            "Time",
	RuleDatetime:        "Datetime",
	RuleTimestamp:       "Timestamp",
	RuleDuration:        "Duration",
	RuleEnum:            "Enum",
	RuleString:          "String",
	RuleNone:            "None",
	RuleSyms:            "Syms",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) && ruleNames[r] != "" {
		return ruleNames[r]
	}
	return "Unknown"
}

// IsScalar reports whether r tags a scalar literal leaf.
func (r Rule) IsScalar() bool {
	return r >= RuleBoolean && r <= RuleNone
}

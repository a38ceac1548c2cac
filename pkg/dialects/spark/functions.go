package spark

// functions are the Spark built-in functions, grouped the way the Spark SQL
// function reference groups them.
var functions = concat(
	aggregateFunctions,
	windowFunctions,
	arrayFunctions,
	mapFunctions,
	dateFunctions,
	jsonFunctions,
	mathFunctions,
	stringFunctions,
	miscFunctions,
	castFunctions,
)

var aggregateFunctions = []string{
	"ANY", "APPROX_COUNT_DISTINCT", "APPROX_PERCENTILE", "AVG", "BIT_AND", "BIT_OR", "BIT_XOR",
	"BOOL_AND", "BOOL_OR", "COLLECT_LIST", "COLLECT_SET", "CORR", "COUNT", "COUNT_IF",
	"COUNT_MIN_SKETCH", "COVAR_POP", "COVAR_SAMP", "EVERY", "FIRST", "FIRST_VALUE", "GROUPING",
	"GROUPING_ID", "KURTOSIS", "LAST", "LAST_VALUE", "MAX", "MAX_BY", "MEAN", "MIN", "MIN_BY",
	"PERCENTILE", "PERCENTILE_APPROX", "SKEWNESS", "SOME", "STD", "STDDEV", "STDDEV_POP",
	"STDDEV_SAMP", "SUM", "VAR_POP", "VAR_SAMP", "VARIANCE",
}

var windowFunctions = []string{
	"CUME_DIST", "DENSE_RANK", "LAG", "LEAD", "NTH_VALUE", "NTILE", "PERCENT_RANK", "RANK",
	"ROW_NUMBER",
}

var arrayFunctions = []string{
	"ARRAY", "ARRAY_CONTAINS", "ARRAY_DISTINCT", "ARRAY_EXCEPT", "ARRAY_INTERSECT", "ARRAY_JOIN",
	"ARRAY_MAX", "ARRAY_MIN", "ARRAY_POSITION", "ARRAY_REMOVE", "ARRAY_REPEAT", "ARRAY_SORT",
	"ARRAY_UNION", "ARRAYS_OVERLAP", "ARRAYS_ZIP", "FLATTEN", "SEQUENCE", "SHUFFLE", "SLICE",
	"SORT_ARRAY", "CARDINALITY", "ELEMENT_AT", "FORALL", "AGGREGATE", "ZIP_WITH",
	"POSEXPLODE", "POSEXPLODE_OUTER", "INLINE", "INLINE_OUTER", "STACK",
}

var mapFunctions = []string{
	"MAP", "MAP_CONCAT", "MAP_ENTRIES", "MAP_FILTER", "MAP_FROM_ARRAYS", "MAP_FROM_ENTRIES",
	"MAP_KEYS", "MAP_VALUES", "MAP_ZIP_WITH", "NAMED_STRUCT", "STR_TO_MAP", "TRANSFORM_KEYS",
	"TRANSFORM_VALUES",
}

var dateFunctions = []string{
	"ADD_MONTHS", "CURRENT_DATE", "CURRENT_TIMESTAMP", "CURRENT_TIMEZONE", "DATE_ADD",
	"DATE_FORMAT", "DATE_FROM_UNIX_DATE", "DATE_PART", "DATE_SUB", "DATE_TRUNC", "DATEDIFF", "DAY",
	"DAYOFMONTH", "DAYOFWEEK", "DAYOFYEAR", "EXTRACT", "FROM_UNIXTIME", "FROM_UTC_TIMESTAMP", "HOUR",
	"LAST_DAY", "MAKE_DATE", "MAKE_DT_INTERVAL", "MAKE_INTERVAL", "MAKE_TIMESTAMP",
	"MAKE_YM_INTERVAL", "MINUTE", "MONTH", "MONTHS_BETWEEN", "NEXT_DAY", "NOW", "QUARTER", "SECOND",
	"SESSION_WINDOW", "TIMESTAMP_MICROS", "TIMESTAMP_MILLIS", "TIMESTAMP_SECONDS", "TO_DATE",
	"TO_TIMESTAMP", "TO_UNIX_TIMESTAMP", "TO_UTC_TIMESTAMP", "TRUNC", "UNIX_DATE", "UNIX_MICROS",
	"UNIX_MILLIS", "UNIX_SECONDS", "UNIX_TIMESTAMP", "WEEKDAY", "WEEKOFYEAR", "WINDOW", "YEAR",
}

var jsonFunctions = []string{
	"FROM_CSV", "FROM_JSON", "GET_JSON_OBJECT", "JSON_ARRAY_LENGTH", "JSON_OBJECT_KEYS",
	"JSON_TUPLE", "SCHEMA_OF_CSV", "SCHEMA_OF_JSON", "TO_CSV", "TO_JSON",
	"XPATH", "XPATH_BOOLEAN", "XPATH_DOUBLE", "XPATH_FLOAT", "XPATH_INT", "XPATH_LONG",
	"XPATH_NUMBER", "XPATH_SHORT", "XPATH_STRING",
}

var mathFunctions = []string{
	"ABS", "ACOS", "ACOSH", "ASIN", "ASINH", "ATAN", "ATAN2", "ATANH", "BIN", "BROUND", "CBRT",
	"CEIL", "CEILING", "CONV", "COS", "COSH", "COT", "DEGREES", "E", "EXP", "EXPM1", "FACTORIAL",
	"FLOOR", "HYPOT", "LN", "LOG", "LOG10", "LOG1P", "LOG2", "MOD", "NANVL", "NEGATIVE", "PI",
	"PMOD", "POSITIVE", "POW", "POWER", "RADIANS", "RAND", "RANDN", "RANDOM", "RINT", "ROUND",
	"SHIFTLEFT", "SHIFTRIGHT", "SHIFTRIGHTUNSIGNED", "SIGN", "SIGNUM", "SIN", "SINH", "SQRT", "TAN",
	"TANH", "TRY_ADD", "TRY_DIVIDE", "WIDTH_BUCKET",
}

var stringFunctions = []string{
	"ASCII", "BASE64", "BIT_LENGTH", "BTRIM", "CHAR", "CHAR_LENGTH", "CHARACTER_LENGTH", "CHR",
	"CONCAT", "CONCAT_WS", "ELT", "FIND_IN_SET", "FORMAT_NUMBER", "FORMAT_STRING", "INITCAP",
	"INSTR", "LCASE", "LEFT", "LENGTH", "LEVENSHTEIN", "LOCATE", "LOWER", "LPAD", "LTRIM",
	"OCTET_LENGTH", "OVERLAY", "PARSE_URL", "POSITION", "PRINTF", "REGEXP_EXTRACT",
	"REGEXP_EXTRACT_ALL", "REGEXP_LIKE", "REGEXP_REPLACE", "REPEAT", "REPLACE", "REVERSE",
	"RIGHT", "RPAD", "RTRIM", "SENTENCES", "SOUNDEX", "SPACE", "SPLIT", "SUBSTR", "SUBSTRING",
	"SUBSTRING_INDEX", "TRANSLATE", "TRIM", "UCASE", "UNBASE64", "UNHEX", "UPPER", "HEX",
}

var miscFunctions = []string{
	"ASSERT_TRUE", "BIT_COUNT", "BIT_GET", "GETBIT", "CRC32", "CURRENT_CATALOG", "CURRENT_DATABASE",
	"CURRENT_USER", "HASH", "INPUT_FILE_BLOCK_LENGTH", "INPUT_FILE_BLOCK_START", "INPUT_FILE_NAME",
	"ISNAN", "ISNOTNULL", "ISNULL", "JAVA_METHOD", "MD5", "MONOTONICALLY_INCREASING_ID", "NVL",
	"NVL2", "RAISE_ERROR", "REFLECT", "SHA", "SHA1", "SHA2", "SPARK_PARTITION_ID", "TYPEOF", "UUID",
	"VERSION", "XXHASH64",
}

var castFunctions = []string{
	"BIGINT", "BINARY", "BOOLEAN", "DATE", "DECIMAL", "DOUBLE", "FLOAT", "INT", "SMALLINT",
	"TIMESTAMP", "TINYINT",
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

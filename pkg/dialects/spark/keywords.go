package spark

var keywords = []string{
	"ADD", "AFTER", "ALL", "ALTER", "ANALYZE", "ANALYSE", "ANTI", "ANY", "ARCHIVE", "ARRAY", "AS", "ASC", "AT",
	"AUTHORIZATION",
	"BETWEEN", "BOTH", "BUCKET", "BUCKETS", "BY",
	"CACHE", "CASCADE", "CAST", "CHANGE", "CHECK", "CLEAR", "CLUSTER", "CLUSTERED", "CODEGEN", "COLLATE",
	"COLLECTION", "COLUMN", "COLUMNS", "COMMENT", "COMMIT", "COMPACT", "COMPACTIONS", "COMPUTE",
	"CONCATENATE", "CONSTRAINT", "CONTAINS", "CONVERT", "COST", "CREATE", "CROSS", "CUBE", "CURRENT",
	"CURRENT ROW", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
	"DATA", "DATABASE", "DATABASES", "DAY", "DAYS", "DAY_HOUR", "DAY_MINUTE", "DAY_SECOND", "DBPROPERTIES",
	"DECODE", "DEFAULT", "DEFINED", "DELETE", "DELIMITED", "DESC", "DESCRIBE", "DFS", "DIRECTORIES",
	"DIRECTORY", "DISTINCT", "DISTINCTROW", "DISTRIBUTE", "DIV", "DROP",
	"ENCODE", "ESCAPE", "ESCAPED", "EXCEPT", "EXCHANGE", "EXISTS", "EXPLODE", "EXPLODE_OUTER", "EXPORT",
	"EXTENDED", "EXTERNAL", "EXTRACT",
	"FALSE", "FETCH", "FIELDS", "FILEFORMAT", "FILTER", "FIRST", "FIRST_VALUE", "FIXED", "FOLLOWING", "FOR",
	"FOREIGN", "FORMAT", "FORMATTED", "FULL", "FUNCTION", "FUNCTIONS",
	"GLOBAL", "GRANT", "GREATEST", "GROUP", "GROUPING", "GROUP_CONCAT",
	"HOUR", "HOURS", "HOUR_MINUTE", "HOUR_SECOND",
	"IF", "IFNULL", "IGNORE", "IMPORT", "IN", "INDEX", "INDEXES", "INNER", "INPATH", "INPUTFORMAT",
	"INTERSECT", "INTERVAL", "INTO", "IS", "ITEMS",
	"KEYS",
	"LAST", "LAST_VALUE", "LATERAL", "LAZY", "LEADING", "LEAST", "LEFT", "LEVEL", "LIKE", "LINES", "LIST",
	"LOCAL", "LOCATION", "LOCK", "LOCKS", "LOGICAL",
	"MACRO", "MAP", "MATCHED", "MERGE", "MINUTE", "MINUTE_SECOND", "MONTH", "MSCK",
	"NAMESPACE", "NAMESPACES", "NATURAL", "NO", "NOT", "NULL", "NULLIF", "NULLS",
	"OF", "OFFSET", "ON DELETE", "ON UPDATE", "ONLY", "OPTIMIZE", "OPTION", "OPTIONS", "ORDER", "OUT",
	"OUTER", "OUTPUTFORMAT", "OVER", "OVERLAPS", "OVERLAY", "OVERWRITE", "OWNER",
	"PARTITION", "PARTITIONED", "PARTITIONS", "PERCENT", "PLACING", "POSITION", "PRECEDING", "PRIMARY",
	"PRINCIPALS", "PROPERTIES", "PURGE",
	"QUERY",
	"RANGE", "RECORDREADER", "RECORDWRITER", "RECOVER", "REDUCE", "REFERENCES", "REGEXP", "RENAME",
	"REPAIR", "REPLACE", "RESPECT", "RESTRICT", "REVOKE", "RIGHT", "RLIKE", "ROLE", "ROLES", "ROLLBACK",
	"ROLLUP", "ROW", "ROWS",
	"SCHEMA", "SECOND", "SELECT", "SEMI", "SEPARATED", "SEPARATOR", "SERDE", "SERDEPROPERTIES",
	"SESSION_USER", "SETS", "SHOW", "SIZE", "SKEWED", "SOME", "SORT", "SORTED", "START", "STATISTICS",
	"STORED", "STRATIFY", "STRING", "STRUCT", "SUBSTR", "SUBSTRING",
	"TABLE", "TABLES", "TBLPROPERTIES", "TEMPORARY", "TERMINATED", "TO", "TOUCH", "TRAILING",
	"TRANSACTION", "TRANSACTIONS", "TRIM", "TRUE", "TRUNCATE", "TYPE", "TYPES",
	"UNARCHIVE", "UNBOUNDED", "UNCACHE", "UNIQUE", "UNKNOWN", "UNLOCK", "UNSET", "UNSIGNED", "USE", "USER",
	"USING",
	"VARIABLES", "VIEW",
	"WINDOW",
	"YEAR", "YEAR_MONTH",
}

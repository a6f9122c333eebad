package shift

import "github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов, реализуется *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

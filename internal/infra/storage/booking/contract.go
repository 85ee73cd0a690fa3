package booking

import "github.com/alex-kodr/bookings-dropdown-service/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/laundromat/internal/logger"
)

// ResponseData - сведения об ответе, собранные за время обработки
type ResponseData struct {
	status int
	size   int
}

// LoggingResponseWriter перехватывает код статуса и размер ответа
type LoggingResponseWriter struct {
	http.ResponseWriter
	responseData *ResponseData
}

func (r *LoggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *LoggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// LogHandle — middleware-логер для входящих HTTP-запросов
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// если обработчик не выставил код явно, net/http отдаёт 200
		responseData := &ResponseData{status: http.StatusOK}
		lw := LoggingResponseWriter{
			ResponseWriter: w,
			responseData:   responseData,
		}

		h.ServeHTTP(&lw, r)

		logger.Info("incoming HTTP request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", responseData.status,
			"duration", time.Since(start),
			"size", responseData.size,
		)
	})
}

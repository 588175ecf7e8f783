package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kergu123/ccxt/adapter/exchange"
	"github.com/Kergu123/ccxt/config"
)

var conf config.AppConfig

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

func statusForError(err error) int {
	switch {
	case exchange.IsKind(err, exchange.KindMarketNotFound),
		exchange.IsKind(err, exchange.KindOrderNotFound):
		return http.StatusNotFound
	case exchange.IsKind(err, exchange.KindAuthenticationError),
		exchange.IsKind(err, exchange.KindPermissionDenied):
		return http.StatusUnauthorized
	case exchange.IsKind(err, exchange.KindInvalidOrder):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusForError(err), gin.H{"error": err.Error()})
}

func symbolParam(c *gin.Context) string {
	return c.Param("base") + "/" + c.Param("quote")
}

func main() {
	err := config.Init(&conf)
	if err != nil {
		panic(err)
	}

	logger := newLogger()

	adapter := exchange.NewBishinoAdapter(conf.Exchange, logger)

	r := gin.Default()

	r.GET("/markets", func(c *gin.Context) {
		force := c.Query("reload") == "true"
		markets, err := adapter.LoadMarkets(c.Request.Context(), force)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, markets)
	})

	r.GET("/ticker/:base/:quote", func(c *gin.Context) {
		ticker, err := adapter.FetchTicker(c.Request.Context(), symbolParam(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, ticker)
	})

	r.GET("/depth/:base/:quote", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		book, err := adapter.FetchOrderBook(c.Request.Context(), symbolParam(c), limit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, book)
	})

	r.GET("/ohlcv/:base/:quote", func(c *gin.Context) {
		since, _ := strconv.ParseInt(c.Query("since"), 10, 64)
		limit, _ := strconv.Atoi(c.Query("limit"))
		candles, err := adapter.FetchOHLCV(c.Request.Context(), symbolParam(c), since, limit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, candles)
	})

	r.GET("/trades/:base/:quote", func(c *gin.Context) {
		since, _ := strconv.ParseInt(c.Query("since"), 10, 64)
		limit, _ := strconv.Atoi(c.Query("limit"))
		trades, err := adapter.FetchTrades(c.Request.Context(), symbolParam(c), since, limit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, trades)
	})

	r.POST("/sync-clock", func(c *gin.Context) {
		drift, err := adapter.SyncClock(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"drift_ms": drift})
	})

	logger.WithField("port", conf.Server.Port).Info("starting market data server")

	if err := r.Run(":" + conf.Server.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

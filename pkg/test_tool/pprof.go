package testtool

import (
	"net/http"
	_ "net/http/pprof" // 匯入後會自動註冊 pprof endpoint

	"semicolon_service/pkg/config"
	"semicolon_service/pkg/logger"

	"go.uber.org/zap"
)

// StartPprof 在 addr 上啟動 pprof, addr 為空或 production 環境時不啟動
//
//	curl http://localhost:6060/debug/pprof/
//	go tool pprof http://localhost:6060/debug/pprof/heap
func StartPprof(addr string) {
	if addr == "" {
		return
	}
	if config.IsProduction() {
		logger.Log.Info("Production environment detected, pprof is disabled.")
		return
	}

	go func() {
		logger.Log.Info("Starting pprof server", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Log.Error("pprof server failed", zap.Error(err))
		}
	}()
}

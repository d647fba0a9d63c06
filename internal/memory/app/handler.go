package app

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"semicolon_service/internal/memory/domain"
	"semicolon_service/pkg/database"
	errprocess "semicolon_service/pkg/err"
	"semicolon_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StateReporter exposes the connection manager state
type StateReporter interface {
	State() database.State
}

// MemoryHandler 处理解鎖相关的 HTTP 请求
type MemoryHandler struct {
	gate             GateUseCase
	seeder           SeedUseCase
	conn             StateReporter
	exposeUnlockCode bool
	now              func() time.Time
}

// NewMemoryHandler create MemoryHandler
func NewMemoryHandler(gate GateUseCase, seeder SeedUseCase, conn StateReporter, exposeUnlockCode bool) *MemoryHandler {
	return &MemoryHandler{
		gate:             gate,
		seeder:           seeder,
		conn:             conn,
		exposeUnlockCode: exposeUnlockCode,
		now:              time.Now,
	}
}

// StatusResponse setting plus whether the release time has passed
type StatusResponse struct {
	domain.Setting
	Released bool `json:"released"`
}

// LoginRequest unlock code submission
type LoginRequest struct {
	Code string `json:"code"`
}

// Status 取得解鎖設定
// @Summary Unlock status
// @Description Returns the singleton setting. unlock_code is omitted unless gate.expose_unlock_code is on
// @Tags Gate
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 404 {object} map[string]string "not_configured"
// @Failure 500 {object} map[string]string
// @Router /api/status [get]
func (h *MemoryHandler) Status(c *fiber.Ctx) error {
	setting, err := h.gate.GetStatus(c.UserContext())
	if err != nil {
		return h.fail(c, "get status", err)
	}

	resp := StatusResponse{Setting: *setting, Released: setting.IsReleased(h.now())}
	if !h.exposeUnlockCode {
		resp.Setting = setting.Public()
	}
	return c.JSON(resp)
}

// Login 比對解鎖碼
// @Summary Submit unlock code
// @Description A wrong code is a 200 with success=false and reason=wrong_code
// @Tags Gate
// @Accept json
// @Produce json
// @Param request body LoginRequest true "unlock code"
// @Success 200 {object} domain.LoginResult
// @Failure 400 {object} map[string]string "invalid request"
// @Failure 404 {object} map[string]string "not_configured"
// @Failure 500 {object} map[string]string
// @Router /api/login [post]
func (h *MemoryHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	result, err := h.gate.Login(c.UserContext(), req.Code)
	if err != nil {
		return h.fail(c, "login", err)
	}

	logger.Log.Info("login", zap.Bool("success", result.Success), zap.String("role", string(result.Role)))
	return c.JSON(result)
}

// Memories 取得全部故事片段
// @Summary Ordered memories
// @Description All memory entries ascending by order
// @Tags Gate
// @Produce json
// @Param auth query string false "unlock token, required only when gate.require_token is on"
// @Success 200 {array} domain.Memory
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/memories [get]
func (h *MemoryHandler) Memories(c *fiber.Ctx) error {
	memories, err := h.gate.ListMemories(c.UserContext())
	if err != nil {
		return h.fail(c, "list memories", err)
	}
	return c.JSON(memories)
}

// Health report the connection manager state
// @Summary Health check
// @Tags Shared
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *MemoryHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": string(h.conn.State()),
	})
}

// Init 清空並重建故事資料
// @Summary Reseed story
// @Description Destructive: wipes settings and memories then writes the configured story
// @Tags Shared
// @Produce plain
// @Success 200 {string} string "Database re-initialized"
// @Failure 500 {string} string
// @Router /init [get]
func (h *MemoryHandler) Init(c *fiber.Ctx) error {
	count, err := h.seeder.Reseed(c.UserContext())
	if err != nil {
		_ = errprocess.Wrap("reseed", err)
		return c.Status(fiber.StatusInternalServerError).SendString("reseed failed: " + err.Error())
	}
	return c.SendString(fmt.Sprintf("Database re-initialized with full story! (%d memories)", count))
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging, admin token required
// @Tags Shared
// @Param status query bool true "Debug status"
// @Param auth query string true "admin unlock token"
// @Success 200 {string} string "debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /api/debug [post]
func (h *MemoryHandler) DebugLogFlag(c *fiber.Ctx) error {
	status, err := strconv.ParseBool(c.Query("status"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	logger.Log.SetDebugMode(status)
	logger.Log.Info("debug", zap.Bool("status", status))
	return c.SendString(fmt.Sprintf("debug mode is : %t", status))
}

func (h *MemoryHandler) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, domain.ErrNotConfigured) {
		logger.Log.Warn(op, zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_configured"})
	}
	_ = errprocess.Wrap(op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

package controller

import (
	"bufio"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"portfolio_backend/internals/features/contact/messages/dto"
	"portfolio_backend/internals/features/contact/messages/model"
	"portfolio_backend/internals/features/contact/messages/service"
	helper "portfolio_backend/internals/helpers"
)

type ContactAdminController struct {
	DB *gorm.DB
}

func NewContactAdminController(db *gorm.DB) *ContactAdminController {
	return &ContactAdminController{DB: db}
}

func countUnread(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.ContactMessageModel{}).
		Where("contact_message_is_read = ?", false).
		Count(&n).Error
	return n, err
}

// publishUnreadCount: hitung ulang lalu siarkan ke semua stream admin.
func publishUnreadCount(db *gorm.DB) {
	n, err := countUnread(db)
	if err != nil {
		log.Println("[WARN] gagal hitung unread:", err)
		return
	}
	service.GetUnreadHub().Publish(n)
}

// =============================
// 📄 Admin: Inbox (newest first)
// =============================
func (ctrl *ContactAdminController) GetAllMessages(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ContactMessageModel{})
	if c.Query("unread") == "true" {
		q = q.Where("contact_message_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var messages []model.ContactMessageModel
	if err := q.
		Order("contact_message_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result := make([]dto.ContactMessageDTO, 0, len(messages))
	for _, m := range messages {
		result = append(result, dto.ToContactMessageDTO(m))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", result, &pg)
}

// =============================
// 🔄 Admin: Toggle Read Status
// =============================
func (ctrl *ContactAdminController) ToggleRead(c *fiber.Ctx) error {
	id := c.Params("id")

	var msg model.ContactMessageModel
	if err := ctrl.DB.First(&msg, "contact_message_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	msg.ContactMessageIsRead = !msg.ContactMessageIsRead
	if err := ctrl.DB.Save(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	publishUnreadCount(ctrl.DB)
	return helper.JsonUpdated(c, "Message berhasil diperbarui", dto.ToContactMessageDTO(msg))
}

// =============================
// 🗑️ Admin: Delete Message
// =============================
func (ctrl *ContactAdminController) DeleteMessage(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ContactMessageModel{}, "contact_message_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	publishUnreadCount(ctrl.DB)
	return helper.JsonDeleted(c, "Message berhasil dihapus", nil)
}

// =============================
// 📄 Admin: Unread Count (snapshot)
// =============================
func (ctrl *ContactAdminController) GetUnreadCount(c *fiber.Ctx) error {
	n, err := countUnread(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", fiber.Map{"unread": n})
}

// =============================
// 🌐 Admin: Unread Count Stream (SSE)
// Kirim snapshot saat connect, lalu push setiap ada perubahan.
// Heartbeat tiap 25 detik supaya koneksi tidak diputus proxy.
// =============================
func (ctrl *ContactAdminController) StreamUnreadCount(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	initial, _ := countUnread(ctrl.DB)
	sub := service.GetUnreadHub().Subscribe()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer service.GetUnreadHub().Unsubscribe(sub)

		writeEvent := func(n int64) bool {
			if _, err := fmt.Fprintf(w, "event: unread\ndata: {\"unread\": %d}\n\n", n); err != nil {
				return false
			}
			return w.Flush() == nil
		}

		if !writeEvent(initial) {
			return
		}

		heartbeat := time.NewTicker(25 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case n, ok := <-sub:
				if !ok || !writeEvent(n) {
					return
				}
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

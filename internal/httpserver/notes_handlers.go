package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	noterepo "github.com/kristian0808/arcade-frontdesk/internal/repository/note"
	"github.com/kristian0808/arcade-frontdesk/internal/service/notes"
)

func listNotesHandler(svc *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := noterepo.ListInput{
			MemberAccount: c.Query("memberAccount"),
			PCName:        c.Query("pcName"),
			Status:        c.Query("status"),
		}
		in.Page, _ = strconv.Atoi(c.Query("page"))
		in.Limit, _ = strconv.Atoi(c.Query("limit"))
		in.MemberID, _ = strconv.Atoi(c.Query("memberId"))

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func createNoteHandler(svc *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in noterepo.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		id, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func resolveNoteHandler(svc *notes.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Resolve(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
	tabrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/tab"
	"github.com/kristian0808/arcade-frontdesk/internal/service/roster"
	"github.com/kristian0808/arcade-frontdesk/internal/service/tabsession"
)

func sessionSnapshotHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, mgr.Session(c.Param("station")).Snapshot())
	}
}

func sessionClearHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, mgr.Session(c.Param("station")).Clear())
	}
}

func selectMemberHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			MemberID int    `json:"memberId"`
			Account  string `json:"memberAccount"`
			PCName   string `json:"pcName"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		ref := domain.MemberRef{ID: body.MemberID, Account: body.Account}
		snap, err := mgr.Session(c.Param("station")).SelectMember(c.Request.Context(), ref, body.PCName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// selectPCHandler resolves the PC through the roster first so occupancy data
// is as fresh as the cache allows, then hands it to the session.
func selectPCHandler(mgr *tabsession.Manager, rosterSvc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			PCName string `json:"pcName"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		p, err := rosterSvc.PC(c.Request.Context(), body.PCName)
		if err != nil {
			respondError(c, err)
			return
		}
		snap, err := mgr.Session(c.Param("station")).SelectPC(c.Request.Context(), *p)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func createTabHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := mgr.Session(c.Param("station")).CreateTab(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, snap)
	}
}

func addItemHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ProductID   string `json:"productId"`
			ProductName string `json:"productName"`
			Price       int64  `json:"price"`
			Quantity    int    `json:"quantity"`
			Custom      bool   `json:"custom"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		session := mgr.Session(c.Param("station"))

		var (
			snap *tabsession.Snapshot
			err  error
		)
		if body.Custom {
			snap, err = session.AddCustomItem(c.Request.Context(), body.ProductName, body.Price)
		} else {
			if body.Quantity == 0 {
				body.Quantity = 1
			}
			snap, err = session.AddItem(c.Request.Context(), tabrepo.AddItemInput{
				ProductID:   body.ProductID,
				ProductName: body.ProductName,
				Price:       body.Price,
				Quantity:    body.Quantity,
			})
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func updateItemHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item index must be numeric"})
			return
		}
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		snap, err := mgr.Session(c.Param("station")).UpdateItemQuantity(c.Request.Context(), index, body.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func removeItemHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item index must be numeric"})
			return
		}
		snap, err := mgr.Session(c.Param("station")).RemoveItem(c.Request.Context(), index)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func closeTabHandler(mgr *tabsession.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			TenderedAmount *int64 `json:"tenderedAmount"`
		}
		// An empty body means close without payment.
		if err := c.ShouldBindJSON(&body); err != nil && c.Request.ContentLength > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		change, snap, err := mgr.Session(c.Param("station")).CloseTab(c.Request.Context(), body.TenderedAmount)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"changeAmount": change, "session": snap})
	}
}

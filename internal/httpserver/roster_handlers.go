package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kristian0808/arcade-frontdesk/internal/service/product"
	"github.com/kristian0808/arcade-frontdesk/internal/service/roster"
)

func listPCsHandler(svc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		pcs, err := svc.PCs(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pcs)
	}
}

func getPCHandler(svc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.PC(c.Request.Context(), c.Param("name"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listMembersHandler(svc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := svc.Members(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

func searchMembersHandler(svc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := svc.SearchMembers(c.Request.Context(), c.Query("query"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

func getMemberHandler(svc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "member id must be numeric"})
			return
		}
		m, err := svc.Member(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func rankingsHandler(svc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rankings, err := svc.Rankings(c.Request.Context(), c.Query("timeframe"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rankings)
	}
}

func overviewHandler(svc *roster.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ov, err := svc.Overview(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ov)
	}
}

func searchProductsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Search(c.Request.Context(), c.Query("query"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

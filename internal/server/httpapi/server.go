// Package httpapi exposes the storefront and admin HTTP endpoints over gin.
// Every response uses one envelope: {"success":true,"data":...} or
// {"success":false,"error":"..."}.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/logging"
	"github.com/avigneron/boutique/internal/server/auth"
	"github.com/avigneron/boutique/internal/server/services"
)

// Server bundles the credential gate and the per-entity facade services
// behind the HTTP surface.
type Server struct {
	gate        *auth.Gate
	products    *services.ProductService
	categories  *services.CategoryService
	socialMedia *services.SocialMediaService
	pages       *services.PageContentService
	shopConfig  *services.ShopConfigService
	uploads     *services.UploadService
	logger      logging.Logger
}

func NewServer(
	gate *auth.Gate,
	products *services.ProductService,
	categories *services.CategoryService,
	socialMedia *services.SocialMediaService,
	pages *services.PageContentService,
	shopConfig *services.ShopConfigService,
	uploads *services.UploadService,
	logger logging.Logger,
) *Server {
	return &Server{
		gate:        gate,
		products:    products,
		categories:  categories,
		socialMedia: socialMedia,
		pages:       pages,
		shopConfig:  shopConfig,
		uploads:     uploads,
		logger:      logger,
	}
}

// Router builds the gin engine with the public and admin route groups.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/products/category/:slug", s.listProductsByCategory)
		api.GET("/categories", s.listCategories)
		api.GET("/config", s.getShopConfig)
		api.GET("/content", s.listPages)
		api.GET("/content/:key", s.getPageByKey)
		api.GET("/social", s.listSocialMedia)
	}

	admin := r.Group("/api/admin")
	admin.POST("/auth", s.login)
	admin.Use(s.requireAdmin())
	{
		admin.GET("/auth", s.checkToken)

		admin.GET("/products", s.listProducts)
		admin.POST("/products", s.createProduct)
		admin.PUT("/products/:id", s.updateProduct)
		admin.DELETE("/products/:id", s.deleteProduct)

		admin.GET("/categories", s.listCategories)
		admin.POST("/categories", s.createCategory)
		admin.PUT("/categories/:id", s.updateCategory)
		admin.DELETE("/categories/:id", s.deleteCategory)

		admin.GET("/social", s.listSocialMedia)
		admin.POST("/social", s.createSocialMedia)
		admin.PUT("/social/:id", s.updateSocialMedia)
		admin.DELETE("/social/:id", s.deleteSocialMedia)

		admin.GET("/content", s.listPages)
		admin.POST("/content", s.createPage)
		admin.PUT("/content/:id", s.updatePage)
		admin.DELETE("/content/:id", s.deletePage)

		admin.GET("/config", s.getShopConfig)
		admin.PUT("/config", s.saveShopConfig)

		admin.POST("/upload", s.presignUpload)
		admin.GET("/upload", s.presignDownload)
	}

	return r
}

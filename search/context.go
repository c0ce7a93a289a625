package search

import "github.com/gin-gonic/gin"

const serviceKey = "search_service"

// SetServiceToContext injects the service the same way db.SetDBtoContext
// injects the gorm handle.
func SetServiceToContext(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(serviceKey, svc)
		c.Next()
	}
}

func ServiceInstance(c *gin.Context) *Service {
	v, ok := c.Get(serviceKey)
	if !ok {
		return nil
	}
	svc, _ := v.(*Service)
	return svc
}

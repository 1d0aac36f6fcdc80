package gateway

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
)

// Register wires the index page and one forwarding handler per configured
// prefix. The routing table is fixed at process start; anything outside it
// falls through to Fiber's 404.
func Register(app *fiber.App, cfg config.GatewayConfig, logger *zap.Logger) {
	app.Get("/", indexHandler(cfg))

	for _, route := range cfg.Routes {
		prefix := "/" + strings.Trim(route.Prefix, "/")
		target := strings.TrimRight(route.Target, "/")
		handler := forwardHandler(prefix, target, logger)
		app.All(prefix, handler)
		app.All(prefix+"/*", handler)
	}
}

// forwardHandler strips the public prefix and proxies the request to the
// target, streaming back status, headers and body. There is no retry here;
// an unreachable target surfaces as 502 to the original caller.
func forwardHandler(prefix, target string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := strings.TrimPrefix(c.Path(), prefix)
		if path == "" {
			path = "/"
		}
		url := target + path
		if query := string(c.Request().URI().QueryString()); query != "" {
			url += "?" + query
		}

		if err := proxy.Do(c, url); err != nil {
			logger.Warn("upstream unreachable",
				zap.String("prefix", prefix),
				zap.String("url", url),
				zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "BAD_GATEWAY",
					"message": "upstream unreachable",
				},
			})
		}
		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}

func indexHandler(cfg config.GatewayConfig) fiber.Handler {
	var links strings.Builder
	for _, route := range cfg.Routes {
		prefix := "/" + strings.Trim(route.Prefix, "/")
		fmt.Fprintf(&links, `<li><a href="%s/api-docs">%s</a></li>`, prefix, strings.Trim(route.Prefix, "/"))
	}
	page := fmt.Sprintf("<h2>API Gateway</h2><ul>%s</ul>", links.String())

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(page)
	}
}

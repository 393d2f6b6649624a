package docs

import "github.com/swaggo/swag"

// JSON renders the registered document
func JSON() (string, error) {
	return swag.ReadDoc(SwaggerInfo.InstanceName())
}

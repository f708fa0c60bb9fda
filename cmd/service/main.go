// @title        Portfolio API
// @version      1.0
// @description  個人作品集網站的後端 API：作品、使用者、聯絡訊息與經歷
// @host         localhost:8080
// @BasePath     /
package main

import (
	"os"

	_ "portfolio-api/docs" // 引入 swag 產出的 docs
)

var exitFunc = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitFunc(1)
	}
}

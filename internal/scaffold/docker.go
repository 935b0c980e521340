package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

const dockerfile = `FROM node:20-alpine
WORKDIR /app
COPY package.json ./
RUN npm install
COPY . .
EXPOSE 3000
CMD ["npm", "run", "dev"]
`

const composeFile = `services:
  app:
    build: .
    ports:
      - "3000:3000"
    environment:
      DATABASE_URL: postgresql://chitty:chitty@db:5432/chittyos?schema=public
    depends_on:
      - db
  db:
    image: postgres:16-alpine
    ports:
      - "5432:5432"
    environment:
      POSTGRES_USER: chitty
      POSTGRES_PASSWORD: chitty
      POSTGRES_DB: chittyos
    volumes:
      - pgdata:/var/lib/postgresql/data

volumes:
  pgdata:
`

// WriteDocker writes the container setup: a Dockerfile for the app and a
// compose file pairing it with postgres.
func WriteDocker(dir string) error {
	files := map[string]string{
		"Dockerfile":         dockerfile,
		"docker-compose.yml": composeFile,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

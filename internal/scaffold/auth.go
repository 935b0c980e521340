package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

const authSchemaJS = `import { z } from 'zod';

export const credentialsSchema = z.object({
  email: z.string().email(),
  password: z.string().min(8),
});

export const registrationSchema = credentialsSchema.extend({
  displayName: z.string().min(1).max(64),
});
`

const authSessionJS = `// Session cookie settings. Set SESSION_SECRET before deploying.
export const sessionConfig = {
  secret: process.env.SESSION_SECRET ?? 'chitty-dev-secret',
  maxAge: 60 * 60 * 24 * 7, // 7 days
  httpOnly: true,
  sameSite: 'lax',
};
`

// WriteAuth scaffolds the authentication module under src/auth: request
// validation schemas and the session configuration.
func WriteAuth(dir string) error {
	authDir := filepath.Join(dir, "src", "auth")
	if err := os.MkdirAll(authDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", authDir, err)
	}

	files := map[string]string{
		"schema.js":  authSchemaJS,
		"session.js": authSessionJS,
	}
	for name, content := range files {
		path := filepath.Join(authDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

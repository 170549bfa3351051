// Package engine assembles an Assistant from configuration.
//
// Configuration comes from the environment ([FromEnv]) or a YAML file
// ([LoadConfig], with
// ${VAR} expansion so API keys can stay out of the file). A registered
// kind→factory map turns the configured provider kind into a concrete
// adapter; [RegisterProvider] extends it.
package engine

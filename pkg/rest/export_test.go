package rest

// Hooks for the external rest_test package.

var NewResourceRouter = newResourceRouter

func HeadOf(m ResourceMethod) ResourceMethod {
	return headMethod{m}
}

func MethodsOf(c *Class) []ResourceMethod {
	methods := make([]ResourceMethod, 0, len(c.ordered))
	for _, m := range c.ordered {
		methods = append(methods, m)
	}
	return methods
}

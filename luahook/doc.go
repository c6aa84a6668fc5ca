// Package luahook runs hook handlers written as Lua scripts.
//
// A script defines global functions named after the extension points it
// cares about; anything it does not define is a no-op:
//
//	function pre_read_list(objects, bundle)
//	    bundle.meta.seen = #objects
//	end
//
//	function post_read_detail(objects, bundle)
//	    if bundle.data.secret then
//	        return "secret field must not leave the server"
//	    end
//	end
//
// The objects argument is the read-only object list; the bundle argument is
// a table with id, object, data (the decoded JSON payload) and meta fields.
// Changes the script makes to data and meta are copied back into the Go
// bundle in place. Returning a non-empty string or false vetoes the
// operation: the message becomes the error the chain propagates.
//
// Scripts run in a restricted Lua state: only the base, table, string and
// math libraries are open, and code-loading builtins are removed. States are
// not goroutine-safe, so each handler serializes its calls through a mutex.
package luahook
